package fiberlog

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagStatus    = "status"
	TagLatency   = "latency"
	TagMethod    = "method"
	TagPath      = "path"
	TagIP        = "ip"
	TagBody      = "body"
	TagResBody   = "res_body"
	TagRequestID = "request_id"
	TagPid       = "pid"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag возвращает значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

var tagFunctions = map[string]FuncTag{
	TagStatus: func(c *fiber.Ctx, d *data) interface{} {
		return c.Response().StatusCode()
	},
	TagLatency: func(c *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagMethod: func(c *fiber.Ctx, d *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, d *data) interface{} {
		return c.Path()
	},
	TagIP: func(c *fiber.Ctx, d *data) interface{} {
		return c.IP()
	},
	TagBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Body())
	},
	TagResBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Response().Body())
	},
	TagRequestID: func(c *fiber.Ctx, d *data) interface{} {
		return c.Get(fiber.HeaderXRequestID)
	},
	TagPid: func(c *fiber.Ctx, d *data) interface{} {
		return strconv.Itoa(d.pid)
	},
}

// getFuncTagMap оставляет только теги из конфигурации
func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if fn, ok := tagFunctions[tag]; ok {
			ftm[tag] = fn
		}
	}
	return ftm
}
