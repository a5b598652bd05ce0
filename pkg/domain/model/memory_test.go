package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

func img(email, title, caption, url string) *model.UploadedImage {
	return &model.UploadedImage{
		ID:        model.NewImageID(),
		Email:     types.Email(email),
		HeadTitle: title,
		Caption:   caption,
		SourceURL: url,
	}
}

func TestGroupMemories(t *testing.T) {
	t.Run("groups by head title in first-seen order", func(t *testing.T) {
		images := []*model.UploadedImage{
			img("a@x.com", "Farewell", "last day", "https://img/1.jpg"),
			img("a@x.com", "Farewell", "group photo", "https://img/2.jpg"),
			img("a@x.com", "Trip", "beach", "https://img/3.png"),
			img("a@x.com", "Farewell", "cake", "https://img/4.jpg"),
		}

		groups := model.GroupMemories(images)
		gt.A(t, groups).Length(2)

		gt.V(t, groups[0].HeadTitle).Equal("Farewell")
		gt.A(t, groups[0].Images).Length(3)
		gt.V(t, groups[0].Images[0].Caption).Equal("last day")
		gt.V(t, groups[0].Images[2].SourceURL).Equal("https://img/4.jpg")

		gt.V(t, groups[1].HeadTitle).Equal("Trip")
		gt.A(t, groups[1].Images).Length(1)
	})

	t.Run("empty input yields no groups", func(t *testing.T) {
		groups := model.GroupMemories(nil)
		gt.A(t, groups).Length(0)
	})

	t.Run("single image yields one group", func(t *testing.T) {
		groups := model.GroupMemories([]*model.UploadedImage{
			img("a@x.com", "Solo", "just me", "https://img/5.jpg"),
		})
		gt.A(t, groups).Length(1)
		gt.A(t, groups[0].Images).Length(1)
	})
}
