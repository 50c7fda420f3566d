package service

import (
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/util"
	"testing"

	"gorm.io/datatypes"
)

func TestValidateMediaPayload(t *testing.T) {
	cases := []struct {
		name    string
		media   model.LessonMedia
		wantErr error
	}{
		{
			name:    "empty file path",
			media:   model.LessonMedia{MediaType: model.MediaImage, FilePath: "  "},
			wantErr: util.ErrEmptyFilePath,
		},
		{
			name:    "unknown type",
			media:   model.LessonMedia{MediaType: "audio", FilePath: "a.mp3"},
			wantErr: util.ErrInvalidMediaType,
		},
		{
			name:  "image without metadata",
			media: model.LessonMedia{MediaType: model.MediaImage, FilePath: "images/a.png"},
		},
		{
			name: "image with caption",
			media: model.LessonMedia{
				MediaType: model.MediaImage,
				FilePath:  "images/a.png",
				Metadata:  datatypes.JSON(`{"caption":"مخطط الشبكة"}`),
			},
		},
		{
			name:    "code without metadata",
			media:   model.LessonMedia{MediaType: model.MediaCode, FilePath: "code/a.c"},
			wantErr: util.ErrCodeLanguageRequired,
		},
		{
			name: "code with blank language",
			media: model.LessonMedia{
				MediaType: model.MediaCode,
				FilePath:  "code/a.c",
				Metadata:  datatypes.JSON(`{"language":" "}`),
			},
			wantErr: util.ErrCodeLanguageRequired,
		},
		{
			name: "code valid",
			media: model.LessonMedia{
				MediaType: model.MediaCode,
				FilePath:  "code/a.c",
				Metadata:  datatypes.JSON(`{"language":"c","speed":40,"pauseMs":500,"loop":true}`),
			},
		},
		{
			name: "lottie valid",
			media: model.LessonMedia{
				MediaType: model.MediaLottie,
				FilePath:  "anim/a.json",
				Metadata:  datatypes.JSON(`{"speed":1.5,"loop":true}`),
			},
		},
		{
			name: "lottie with inline animation",
			media: model.LessonMedia{
				MediaType: model.MediaLottie,
				FilePath:  "anim/a.json",
				Metadata:  datatypes.JSON(`{"loop":true,"animation":{"v":"5.7.1","layers":[{"ty":4}]}}`),
			},
		},
		{
			name: "lottie with garbage animation",
			media: model.LessonMedia{
				MediaType: model.MediaLottie,
				FilePath:  "anim/a.json",
				Metadata:  datatypes.JSON(`{"loop":true,"animation":{"fr":30}}`),
			},
			wantErr: util.ErrInvalidLottiePayload,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateMediaPayload(&tc.media)
			if err != tc.wantErr {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateMediaPayloadNormalizesVideoURL(t *testing.T) {
	media := &model.LessonMedia{
		MediaType: model.MediaVideo,
		FilePath:  "https://www.youtube.com/watch?v=abc123",
	}
	if err := ValidateMediaPayload(media); err != nil {
		t.Fatalf("ValidateMediaPayload: %v", err)
	}
	if media.FilePath != "https://www.youtube.com/embed/abc123" {
		t.Fatalf("url not normalized: %s", media.FilePath)
	}
}

func TestValidateLottiePayload(t *testing.T) {
	valid := []byte(`{"v":"5.7.1","layers":[{"ty":4}],"fr":30}`)
	if err := ValidateLottiePayload(valid); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	invalid := [][]byte{
		[]byte(`not json`),
		[]byte(`[]`),
		[]byte(`{"layers":[]}`),
		[]byte(`{"v":"5.7.1"}`),
		[]byte(`{"v":"5.7.1","layers":"nope"}`),
	}
	for _, raw := range invalid {
		if err := ValidateLottiePayload(raw); err != util.ErrInvalidLottiePayload {
			t.Fatalf("ValidateLottiePayload(%s) = %v, want ErrInvalidLottiePayload", raw, err)
		}
	}
}
