// Package validator provides declarative validation rules for card numbers and
// the request inputs around them.
//
// A Rule couples a Check function with translation-friendly error metadata.
// Apply evaluates rules in order and aggregates failures into a
// ValidationErrors value that satisfies the error interface:
//
//	err := validator.Apply(
//	    validator.Required("number", req.Number),
//	    validator.CardBrandIn("number", req.Number, card.Visa, card.Mastercard),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.ToMap() -> {"number": ["card brand must be one of: visa, mastercard"]}
//	}
//
// Card rules delegate to package card, so they inherit its normalization:
// spaces, dashes and any other non-digit characters are ignored.
//
// Rules hold no shared state and are safe for concurrent use.
package validator
