// Package api serves card validation and card image scanning as JSON over
// HTTP on a chi router.
//
// Endpoints:
//
//	POST /v1/cards/validate        {"number": "..."}        -> card.Result
//	POST /v1/cards/validate/batch  {"numbers": ["..."]}     -> {"results": [...]}
//	POST /v1/cards/scan            {"image_path": "..."}    -> scanner.Report
//	GET  /health/live                                       -> ALIVE
//	GET  /health/ready                                      -> READY | NOT_READY
//
// An invalid card number is not an error: validate answers 200 with
// "valid": false. Errors are rendered as {"error": key, "details": {...}}
// with 400 for malformed bodies, 422 for rule failures and unusable images,
// 404 for missing images and 500 otherwise.
package api
