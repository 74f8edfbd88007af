// Package imagesource loads card images for text extraction from the local
// filesystem or from Amazon S3 (and S3-compatible stores such as MinIO).
//
// Both implementations of Source enforce a size limit and verify that the
// content is an image before returning it:
//
//	src, err := imagesource.NewLocalSource("./images", imagesource.WithLocalMaxBytes(5<<20))
//	if err != nil {
//	    return err
//	}
//	img, err := src.Open(ctx, "cards/base.jpg")
//	switch {
//	case errors.Is(err, imagesource.ErrFileNotFound):
//	case errors.Is(err, imagesource.ErrNotImage):
//	}
//
// LocalSource refuses paths that resolve outside its base directory.
// S3Source maps SDK failures onto the same sentinel errors (ErrFileNotFound,
// ErrAccessDenied, ErrOperationTimeout, ...) so callers can handle both
// backends alike.
package imagesource
