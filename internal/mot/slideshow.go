package mot

// Slide is a completed slideshow image.
type Slide struct {
	TransportID uint16
	Name        string
	MIME        string
	Data        []byte
}

// slideOf wraps an entity as a slideshow image when its content type
// and MIME identify a renderable picture.
func slideOf(e Entity) (Slide, bool) {
	if e.Header.ContentType != ContentTypeImage {
		return Slide{}, false
	}
	switch e.Header.MIME {
	case "image/jpeg", "image/png":
		return Slide{
			TransportID: e.TransportID,
			Name:        e.Header.Name,
			MIME:        e.Header.MIME,
			Data:        e.Body,
		}, true
	}
	return Slide{}, false
}
