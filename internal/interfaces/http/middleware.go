package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/Granja-api/pkg/logger"
	"github.com/jhoicas/Granja-api/pkg/tracing"
)

// AccessLog registra una línea por petición con método, ruta, status y latencia.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			// el ErrorHandler aún no escribió la respuesta
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("http")
		return err
	}
}

// Tracing abre un span por petición y lo deja en c.UserContext() para que los casos de uso
// cuelguen sus spans de él.
func Tracing(tracer trace.Tracer) fiber.Handler {
	if tracer == nil {
		tracer = tracing.Noop()
	}
	return func(c *fiber.Ctx) error {
		ctx, span := tracer.Start(c.UserContext(), tracing.SpanPrefixHTTP+c.Method(),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String(tracing.AttrHTTPMethod, c.Method())),
		)
		defer span.End()
		c.SetUserContext(ctx)

		err := c.Next()

		status := c.Response().StatusCode()
		span.SetAttributes(
			attribute.String(tracing.AttrHTTPRoute, c.Route().Path),
			attribute.Int(tracing.AttrHTTPStatus, status),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else if status >= fiber.StatusInternalServerError {
			span.SetStatus(codes.Error, "error interno")
		}
		return err
	}
}
