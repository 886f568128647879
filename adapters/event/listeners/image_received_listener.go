package listeners

import (
	"github.com/jobeserver/demo/domain"
	"github.com/jobeserver/demo/domain/image"
	"github.com/jobeserver/demo/pkg/app"
	"go.uber.org/zap"
)

type ImageReceivedEventListener struct {
	logger *zap.SugaredLogger
}

func NewImageReceivedEventListener(logger *zap.SugaredLogger) ImageReceivedEventListener {
	return ImageReceivedEventListener{logger: logger}
}

func (l ImageReceivedEventListener) EventHandler(event domain.BaseDomainEvent) error {
	e, ok := event.(image.ImageReceivedEvent)
	if !ok {
		return nil
	}

	l.logger.Infow(e.Label+" is found in "+e.City,
		zap.String("label", e.Label),
		zap.String("city", e.City),
		zap.String("path", e.Path),
		zap.Int64("size", e.Size),
		zap.String("mime_type", e.MimeType),
	)

	if !app.IsImage(e.MimeType) {
		l.logger.Warnw("received payload is not an image",
			zap.String("path", e.Path),
			zap.String("mime_type", e.MimeType),
		)
	}

	return nil
}
