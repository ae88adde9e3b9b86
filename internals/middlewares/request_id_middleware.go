package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
	"github.com/sirupsen/logrus"
)

const LocRequestID = "reqid"

// RequestContext: Request-ID + timing + a per-request deadline on the user context.
func RequestContext(log logrus.FieldLogger, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals(LocRequestID, id)
		start := time.Now()

		// HTTP timeout guard (selaras dengan statement_timeout di DB)
		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		log.WithFields(logrus.Fields{
			"id":     id,
			"method": c.Method(),
			"url":    c.OriginalURL(),
			"status": c.Response().StatusCode(),
			"dur":    time.Since(start).String(),
		}).Debug("[REQ]")
		return err
	}
}
