package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"time"

	"github.com/asecurityteam/iomigrate/pkg/domain"
)

const (
	invocationTypeHeader          = "X-Amz-Invocation-Type"
	invocationTypeRequestResponse = "RequestResponse"
	invocationTypeEvent           = "Event"
	invocationTypeDryRun          = "DryRun"
	invocationVersionHeader       = "X-Amz-Executed-Version"
	invocationErrorHeader         = "X-Amz-Function-Error"
	invocationErrorTypeHandled    = "Handled"
	invocationErrorTypeUnhandled  = "Unhandled"

	statInvoke         = "iomigrate.invoke"
	statInvokeDuration = "iomigrate.invoke.duration"
)

// bgContext detaches a context from the lifecycle of the *http.Request it
// came from. Values are still looked up in the request context so that the
// logger and stat client travel with background invocations, but
// cancellation and deadlines come from context.Background().
type bgContext struct {
	context.Context
	Values context.Context
}

func (c *bgContext) Value(key interface{}) interface{} {
	return c.Values.Value(key)
}

// lambdaError is the Lambda error response body.
type lambdaError struct {
	Message    string   `json:"errorMessage"`
	Type       string   `json:"errorType"`
	StackTrace []string `json:"stackTrace"`
}

// Invoke implements the AWS Lambda Invoke API for the functions of the
// service.
// https://docs.aws.amazon.com/lambda/latest/dg/API_Invoke.html
//
// Not supported:
//
// -	The "Tail" option for the LogType header.
//
// -	The "Qualifier" parameter. The reported version is always "latest".
type Invoke struct {
	LogFn      domain.LogFn
	StatFn     domain.StatFn
	URLParamFn domain.URLParamFn
	Fetcher    domain.HandlerFetcher
}

func (h *Invoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fnName := h.URLParamFn(r.Context(), "functionName")
	fn, errFn := h.Fetcher.FetchHandler(r.Context(), fnName)
	if errFn != nil {
		w.WriteHeader(statusFromError(errFn))
		_ = json.NewEncoder(w).Encode(responseFromError(errFn))
		return
	}
	fnType := r.Header.Get(invocationTypeHeader)
	if fnType == "" {
		fnType = invocationTypeRequestResponse
	}
	ctx := r.Context()
	b, errRead := io.ReadAll(r.Body)
	if errRead != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(responseFromError(errRead))
		return
	}
	w.Header().Set(invocationVersionHeader, "latest")
	switch fnType {
	case invocationTypeDryRun:
		w.WriteHeader(http.StatusNoContent)
		return
	case invocationTypeEvent:
		ctx = &bgContext{Context: context.Background(), Values: ctx}
		go func() {
			if _, err := h.invoke(ctx, fnName, fn, b); err != nil {
				h.LogFn(ctx).Error(eventFailed{Function: fnName, Reason: err.Error()})
			}
		}()
		w.WriteHeader(http.StatusAccepted)
	case invocationTypeRequestResponse:
		rb, errInvoke := h.invoke(ctx, fnName, fn, b)
		statusCode := statusFromError(errInvoke)
		if statusCode > 299 {
			w.Header().Set(invocationErrorHeader, invocationErrorTypeHandled)
		}
		if statusCode > 499 {
			w.Header().Set(invocationErrorHeader, invocationErrorTypeUnhandled)
			h.LogFn(ctx).Error(invokeFailed{Function: fnName, Reason: errInvoke.Error()})
		}
		w.WriteHeader(statusCode)
		if errInvoke != nil {
			rb, _ = json.Marshal(responseFromError(errInvoke))
		}
		if len(rb) > 0 {
			_, _ = w.Write(rb)
		}
	default:
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(lambdaError{
			Message:    fmt.Sprintf("InvocationType %s not valid", fnType),
			Type:       "InvalidParameterValueException",
			StackTrace: errResponseStackTrace,
		})
		return
	}
}

func (h *Invoke) invoke(ctx context.Context, name string, fn domain.Handler, payload []byte) ([]byte, error) {
	start := time.Now()
	out, err := fn.Invoke(ctx, payload)
	result := "success"
	if err != nil {
		result = "failure"
	}
	stat := h.StatFn(ctx)
	stat.Count(statInvoke, 1, "function:"+name, "result:"+result)
	stat.Timing(statInvokeDuration, time.Since(start), "function:"+name)
	return out, err
}

// errResponseStackTrace populates the stackTrace attribute of every error.
var errResponseStackTrace = []string{}

func responseFromError(err error) lambdaError {
	errType := reflect.TypeOf(err)
	errTypeName := errType.Name()
	if errType.Kind() == reflect.Ptr {
		errTypeName = errType.Elem().Name()
	}
	return lambdaError{
		Message:    err.Error(),
		Type:       errTypeName,
		StackTrace: errResponseStackTrace,
	}
}

func statusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var (
		invalidUTF8     *json.InvalidUTF8Error // nolint
		invalidUnmarsh  *json.InvalidUnmarshalError
		unmarshalField  *json.UnmarshalFieldError // nolint
		unmarshalType   *json.UnmarshalTypeError
		syntax          *json.SyntaxError
		invalidArgument domain.InvalidArgumentError
		notFound        domain.NotFoundError
		fileNotFound    domain.BinaryFileNotFoundError
	)
	switch {
	case errors.As(err, &invalidUTF8), errors.As(err, &invalidUnmarsh),
		errors.As(err, &unmarshalField), errors.As(err, &unmarshalType),
		errors.As(err, &syntax), errors.As(err, &invalidArgument):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.As(err, &fileNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
