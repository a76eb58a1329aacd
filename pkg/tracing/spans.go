package tracing

import (
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Atributos de span.
const (
	AttrRecordKind  = "record.kind"
	AttrReferenceNo = "record.reference_no"
	AttrGoatID      = "goat.id"
	AttrUserID      = "user.id"
	AttrHTTPRoute   = "http.route"
	AttrHTTPMethod  = "http.method"
	AttrHTTPStatus  = "http.status_code"
)

// Prefijos de nombres de span.
const (
	SpanPrefixRegistrar = "registrar."
	SpanPrefixDashboard = "dashboard."
	SpanPrefixHTTP      = "http."
)

// End registra el error (si lo hay) y cierra el span.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
