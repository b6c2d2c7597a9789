package shirei

import (
	"image"
	"sync"
)

// Images are handed to the backend by id. Id 0 is "no image".
type ImageId uint32

var imagesLock sync.RWMutex
var images = make([]*image.RGBA, 1, 64)

func registerImage(img *image.RGBA) ImageId {
	imagesLock.Lock()
	defer imagesLock.Unlock()
	id := ImageId(len(images))
	images = append(images, img)
	return id
}

// LookupImage is used by the backend to fetch the pixels behind a surface.
func LookupImage(id ImageId) *image.RGBA {
	imagesLock.RLock()
	defer imagesLock.RUnlock()
	if int(id) >= len(images) {
		return nil
	}
	return images[id]
}
