package image

const ImageReceivedEventName = "image.received"

type ImageReceivedEvent struct {
	Label    string
	City     string
	Path     string
	Size     int64
	MimeType string
}

func NewImageReceivedEvent(label, city, path string, size int64, mimeType string) ImageReceivedEvent {
	return ImageReceivedEvent{
		Label:    label,
		City:     city,
		Path:     path,
		Size:     size,
		MimeType: mimeType,
	}
}

func (e ImageReceivedEvent) EventName() string {
	return ImageReceivedEventName
}
