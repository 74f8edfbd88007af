// Package ocr defines the boundary between card images and card numbers.
//
// Text recognition itself is out of scope: Extractor is an interface that an
// OCR engine or cloud service adapter implements. Unavailable, the default,
// reports ErrNoEngine; Static returns fixed text for tests and demos.
//
// FindCandidates scans recognised text for sequences that could be card
// numbers. It uses the Luhn check only to cut a card number out of a longer
// run of digit groups; validation is left to package card:
//
//	text, err := extractor.Extract(ctx, img.Data, img.MIMEType)
//	if err != nil {
//	    return err
//	}
//	for _, c := range ocr.FindCandidates(text) {
//	    res := card.Validate(c)
//	    ...
//	}
package ocr
