package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray id in both directions.
const Header = "X-Ray-ID"

// LocalKey is the fiber locals key read by logger.WithRayID.
const LocalKey = "ray_id"

// New assigns a ray id to each request, reusing a valid incoming one.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Locals(LocalKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
