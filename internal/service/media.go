package service

import (
	"encoding/json"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/util"
	"strings"
)

// ValidateMediaPayload checks a media item at the submit boundary: the file
// path must not be empty and the metadata must match the media type. Video
// URLs are normalized to their embeddable form in place.
func ValidateMediaPayload(media *model.LessonMedia) error {
	if strings.TrimSpace(media.FilePath) == "" {
		return util.ErrEmptyFilePath
	}

	switch media.MediaType {
	case model.MediaVideo:
		media.FilePath = util.NormalizeVideoURL(media.FilePath)
		if len(media.Metadata) > 0 {
			var meta model.VideoMeta
			if err := json.Unmarshal(media.Metadata, &meta); err != nil {
				return util.ErrInvalidMediaType
			}
		}
	case model.MediaImage:
		if len(media.Metadata) > 0 {
			var meta model.ImageMeta
			if err := json.Unmarshal(media.Metadata, &meta); err != nil {
				return util.ErrInvalidMediaType
			}
		}
	case model.MediaLottie:
		if len(media.Metadata) > 0 {
			var meta model.LottieMeta
			if err := json.Unmarshal(media.Metadata, &meta); err != nil {
				return util.ErrInvalidMediaType
			}
			if len(meta.Animation) > 0 {
				if err := ValidateLottiePayload(meta.Animation); err != nil {
					return err
				}
			}
		}
	case model.MediaCode:
		var meta model.CodeMeta
		if len(media.Metadata) == 0 {
			return util.ErrCodeLanguageRequired
		}
		if err := json.Unmarshal(media.Metadata, &meta); err != nil {
			return util.ErrInvalidMediaType
		}
		if strings.TrimSpace(meta.Language) == "" {
			return util.ErrCodeLanguageRequired
		}
	default:
		return util.ErrInvalidMediaType
	}

	return nil
}

// ValidateLottiePayload rejects an animation unless it is a JSON object
// carrying at least the minimal {v, layers} shape.
func ValidateLottiePayload(raw []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return util.ErrInvalidLottiePayload
	}
	if _, ok := doc["v"]; !ok {
		return util.ErrInvalidLottiePayload
	}
	layers, ok := doc["layers"]
	if !ok {
		return util.ErrInvalidLottiePayload
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(layers, &arr); err != nil {
		return util.ErrInvalidLottiePayload
	}
	return nil
}
