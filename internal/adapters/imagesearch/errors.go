package imagesearch

import "errors"

// Sentinel errors.
var (
	ErrRequest = errors.New("image search request failed")
	ErrStatus  = errors.New("image search returned unexpected status")
	ErrNoImage = errors.New("no usable image in search results")
)
