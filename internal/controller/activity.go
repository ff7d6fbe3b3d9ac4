package controller

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"mergington.edu/activities-backend/internal/model"
	"mergington.edu/activities-backend/internal/server/svr"
	"mergington.edu/activities-backend/internal/service"
	"mergington.edu/activities-backend/internal/util/rekuest"
)

type Activity struct {
	fx.In

	ActivityService *service.Activity
}

func RegisterActivity(activities *svr.Activities, c Activity) {
	activities.Get("/", c.List)
	activities.Post("/:name/signup", c.Signup)
	activities.Delete("/:name/signup", c.Unregister)
}

// @Summary      List Activities
// @Tags         Activity
// @Produce      json
// @Success      200  {object}  map[string]model.Activity
// @Router       /activities [GET]
func (c *Activity) List(ctx *fiber.Ctx) error {
	return ctx.JSON(c.ActivityService.List(ctx.UserContext()))
}

// @Summary      Sign Up for an Activity
// @Tags         Activity
// @Produce      json
// @Param        name   path   string  true  "Activity name"
// @Param        email  query  string  true  "Student email"
// @Success      200  {object}  model.MessageResponse
// @Failure      400  {object}  mgerr.MergingtonError  "Student already signed up for this activity"
// @Failure      404  {object}  mgerr.MergingtonError  "Activity not found"
// @Router       /activities/{name}/signup [POST]
func (c *Activity) Signup(ctx *fiber.Ctx) error {
	name := activityName(ctx)
	email := ctx.Query("email")
	if err := rekuest.ValidEmail(email); err != nil {
		return err
	}

	message, err := c.ActivityService.Signup(ctx.UserContext(), name, email)
	if err != nil {
		return err
	}
	return ctx.JSON(model.MessageResponse{Message: message})
}

// @Summary      Unregister from an Activity
// @Tags         Activity
// @Produce      json
// @Param        name   path   string  true  "Activity name"
// @Param        email  query  string  true  "Student email"
// @Success      200  {object}  model.MessageResponse
// @Failure      400  {object}  mgerr.MergingtonError  "Student not signed up for this activity"
// @Failure      404  {object}  mgerr.MergingtonError  "Activity not found"
// @Router       /activities/{name}/signup [DELETE]
func (c *Activity) Unregister(ctx *fiber.Ctx) error {
	name := activityName(ctx)
	email := ctx.Query("email")
	if err := rekuest.ValidEmail(email); err != nil {
		return err
	}

	message, err := c.ActivityService.Unregister(ctx.UserContext(), name, email)
	if err != nil {
		return err
	}
	return ctx.JSON(model.MessageResponse{Message: message})
}

// activityName decodes the :name path segment. Activity names contain
// spaces, so clients send them percent-encoded.
func activityName(ctx *fiber.Ctx) string {
	raw := ctx.Params("name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}
