// Package scanner connects an image source, an OCR extractor and the card
// validator.
//
//	src, _ := imagesource.NewLocalSource("./images")
//	sc := scanner.New(src, scanner.WithExtractor(myEngine), scanner.WithLogger(log))
//	report, err := sc.ProcessFromImage(ctx, "base.jpg")
//	if err != nil {
//	    return err // image missing, not an image, engine failure...
//	}
//	if report.Card != nil {
//	    fmt.Println(report.Card.Brand)
//	}
//
// With the default ocr.Unavailable extractor the scanner still verifies the
// image and returns a placeholder Report describing how to plug in an engine.
package scanner
