package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"moodpet/internal/app/achievements"
	"moodpet/internal/app/actions"
	"moodpet/internal/app/moods"
	"moodpet/internal/app/pets"
	"moodpet/internal/app/ports"
	"moodpet/internal/app/shop"
	"moodpet/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	PetsUC         pets.UseCase
	ActionsUC      actions.UseCase
	MoodsUC        moods.UseCase
	ShopUC         shop.UseCase
	AchievementsUC achievements.UseCase
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	api := s.Group("/api")
	api.POST("/pets", h.createPet)
	api.GET("/pets", h.listPets)
	api.GET("/pets/:pet_id", h.getPet)
	api.PUT("/pets/:pet_id", h.updatePet)
	api.POST("/pets/:pet_id/feed", h.feedPet)
	api.POST("/pets/:pet_id/play", h.playWithPet)
	api.POST("/pets/:pet_id/train", h.trainPet)
	api.POST("/moods", h.logMood)
	api.GET("/moods/:pet_id", h.listMoods)
	api.GET("/shop", h.shopCatalog)
	api.GET("/achievements/:pet_id", h.listAchievements)
}

type createPetRequest struct {
	Name string `json:"name"`
}

type updatePetRequest struct {
	Name      *string `json:"name"`
	Happiness *int    `json:"happiness"`
	Health    *int    `json:"health"`
	Coins     *int    `json:"coins"`
}

type logMoodRequest struct {
	PetID     string `json:"pet_id"`
	Emotion   string `json:"emotion"`
	Intensity *int   `json:"intensity"`
	Note      string `json:"note"`
}

func (h Handler) createPet(c context.Context, ctx *app.RequestContext) {
	var body createPetRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	created, err := h.PetsUC.Create(c, pets.CreateRequest{Name: body.Name})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, created)
}

func (h Handler) listPets(c context.Context, ctx *app.RequestContext) {
	all, err := h.PetsUC.List(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, all)
}

func (h Handler) getPet(c context.Context, ctx *app.RequestContext) {
	found, err := h.PetsUC.Get(c, ctx.Param("pet_id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, found)
}

func (h Handler) updatePet(c context.Context, ctx *app.RequestContext) {
	var body updatePetRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	updated, err := h.PetsUC.Update(c, ctx.Param("pet_id"), pets.UpdateRequest{
		Name:      body.Name,
		Happiness: body.Happiness,
		Health:    body.Health,
		Coins:     body.Coins,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, updated)
}

func (h Handler) feedPet(c context.Context, ctx *app.RequestContext) {
	h.runAction(c, ctx, pet.ActionFeed)
}

func (h Handler) playWithPet(c context.Context, ctx *app.RequestContext) {
	h.runAction(c, ctx, pet.ActionPlay)
}

func (h Handler) trainPet(c context.Context, ctx *app.RequestContext) {
	h.runAction(c, ctx, pet.ActionTrain)
}

func (h Handler) runAction(c context.Context, ctx *app.RequestContext, action pet.ActionType) {
	resp, err := h.ActionsUC.Execute(c, actions.Request{PetID: ctx.Param("pet_id"), Type: action})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) logMood(c context.Context, ctx *app.RequestContext) {
	var body logMoodRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	entry, err := h.MoodsUC.Log(c, moods.LogRequest{
		PetID:     body.PetID,
		Emotion:   pet.Emotion(body.Emotion),
		Intensity: body.Intensity,
		Note:      body.Note,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, entry)
}

func (h Handler) listMoods(c context.Context, ctx *app.RequestContext) {
	entries, err := h.MoodsUC.ListByPet(c, ctx.Param("pet_id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, entries)
}

func (h Handler) shopCatalog(c context.Context, ctx *app.RequestContext) {
	items, err := h.ShopUC.Catalog(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, items)
}

func (h Handler) listAchievements(c context.Context, ctx *app.RequestContext) {
	records, err := h.AchievementsUC.ListByPet(c, ctx.Param("pet_id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, records)
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", "Pet not found")
	case errors.Is(err, moods.ErrInvalidEmotion):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_emotion", err.Error())
	case errors.Is(err, moods.ErrInvalidIntensity):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_intensity", err.Error())
	case errors.Is(err, pets.ErrInvalidRequest),
		errors.Is(err, actions.ErrInvalidRequest),
		errors.Is(err, moods.ErrInvalidRequest),
		errors.Is(err, achievements.ErrInvalidRequest),
		errors.Is(err, pet.ErrUnknownAction):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
