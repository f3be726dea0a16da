package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

type change struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
}

func (c *Client) changesURL() string {
	u := c.baseURL + "/changes"
	if rest, ok := strings.CutPrefix(u, "https://"); ok {
		return "wss://" + rest
	}
	return "ws://" + strings.TrimPrefix(u, "http://")
}

// WatchChanges subscribes to the server's change feed and invalidates the
// matching cache entries as changes arrive. It blocks until ctx is done or
// the connection fails.
func (c *Client) WatchChanges(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.changesURL(), nil)
	if err != nil {
		return fmt.Errorf("dial change feed: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	lgr := logger.Component("apiclient")
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read change feed: %w", err)
		}

		// several changes may share one frame, one per line
		for _, line := range strings.Split(string(data), "\n") {
			var ch change
			if err := json.Unmarshal([]byte(line), &ch); err != nil {
				lgr.Warn().Err(err).Str("message", line).Msg("Ignoring malformed change")
				continue
			}
			c.cache.Invalidate(Entity(ch.Entity))
		}
	}
}
