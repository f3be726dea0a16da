package middleware

import "github.com/gin-gonic/gin"

// ChangePublisher receives a notice after a write succeeds
type ChangePublisher interface {
	Publish(entity, action string)
}

// PublishChange announces a change to each entity once the handler has
// answered with a 2xx status. A nil publisher turns it into a no-op.
func PublishChange(p ChangePublisher, action string, entities ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if p == nil || c.IsAborted() {
			return
		}
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}
		for _, entity := range entities {
			p.Publish(entity, action)
		}
	}
}
