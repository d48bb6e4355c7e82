package handler

import (
	"fmt"
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"querydrills/internal/http/middleware"
	"querydrills/internal/service"
)

const echoTemplate = `Here are some details of your request:
      Base URL: %s
      Host: %s
      Path: %s
      Protocol: %s
      Secure: %t
    `

// RegisterRoutes mounts the drill routes under basePath ("" mounts at the root).
// Every route is independent; none of them share state.
func RegisterRoutes(app *fiber.App, basePath string, svc service.DrillService, log *zap.Logger) {
	var r fiber.Router = app
	if basePath != "" {
		r = app.Group(basePath)
	}

	r.Get("/echo", Echo(basePath))
	r.Get("/queryViewer", QueryViewer(log))
	r.Get("/greetings", Greetings(svc))
	r.Get("/sum", Sum(svc))
	r.Get("/cipher", Cipher(svc))
	r.Get("/lotto", Lotto(svc))

	app.Get("/healthz", LivenessProbe())
}

// Echo godoc
// @Summary  Describe the incoming request
// @Produce  plain
// @Success  200 {string} string
// @Router   /echo [get]
func Echo(basePath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if basePath != "" {
			path = strings.TrimPrefix(path, basePath)
		}
		return c.SendString(fmt.Sprintf(echoTemplate,
			basePath, hostWithoutPort(c.Hostname()), path, c.Protocol(), c.Secure()))
	}
}

// QueryViewer godoc
// @Summary  Log the query parameters
// @Success  200
// @Router   /queryViewer [get]
func QueryViewer(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		middleware.LoggerFromCtx(c, log).Info("query viewer", zap.Any("query", parseQuery(c).Map()))
		c.Status(fiber.StatusOK)
		return nil
	}
}

// Greetings godoc
// @Summary  Greet a visitor of the kingdom
// @Produce  plain
// @Param    name query string true "visitor name"
// @Param    race query string true "visitor race"
// @Success  200 {string} string
// @Failure  400 {string} string
// @Router   /greetings [get]
func Greetings(svc service.DrillService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := parseQuery(c)
		req := service.GreetingRequest{
			Name: q.Get("name"),
			Race: q.Get("race"),
		}
		msg, err := svc.Greet(req)
		if err != nil {
			return badRequest(err)
		}
		return c.SendString(msg)
	}
}

// Sum godoc
// @Summary  Add two numbers
// @Produce  plain
// @Param    a query string true "first number"
// @Param    b query string true "second number"
// @Success  200 {string} string
// @Failure  400 {string} string
// @Router   /sum [get]
func Sum(svc service.DrillService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := parseQuery(c)
		req := service.SumRequest{
			A: q.Get("a"),
			B: q.Get("b"),
		}
		res, err := svc.Sum(req)
		if err != nil {
			return badRequest(err)
		}
		return c.SendString(service.SumMessage(res))
	}
}

// Cipher godoc
// @Summary  Caesar-shift a text
// @Produce  plain
// @Param    text  query string true "text to encode"
// @Param    shift query string true "letters to shift by"
// @Success  200 {string} string
// @Failure  400 {string} string
// @Router   /cipher [get]
func Cipher(svc service.DrillService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := parseQuery(c)
		req := service.CipherRequest{
			Text:  q.Get("text"),
			Shift: q.Get("shift"),
		}
		out, err := svc.Cipher(req)
		if err != nil {
			return badRequest(err)
		}
		return c.SendString(out)
	}
}

// Lotto godoc
// @Summary  Check six numbers against a random draw
// @Produce  plain
// @Param    numbers query []string true "six numbers between 1 and 20" collectionFormat(multi)
// @Success  200 {string} string
// @Failure  400 {string} string
// @Router   /lotto [get]
func Lotto(svc service.DrillService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		numbers, isArray := parseQuery(c).List("numbers")
		res, err := svc.Lotto(service.LottoRequest{Numbers: numbers, IsArray: isArray})
		if err != nil {
			return badRequest(err)
		}
		return c.SendString(res.Prize.Message())
	}
}

// LivenessProbe answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Status(fiber.StatusOK)
		return nil
	}
}

// hostWithoutPort drops the port from a Host value. IPv6 literals keep their brackets.
func hostWithoutPort(host string) string {
	h, _, err := net.SplitHostPort(host)
	if err != nil {
		return host
	}
	if strings.Contains(h, ":") {
		return "[" + h + "]"
	}
	return h
}
