// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"

	"github.com/curioswitch/peakplates/internal/auth"
)

// Router registers HTTP handlers. It is satisfied by chi.Router.
type Router interface {
	Handle(pattern string, h http.Handler)
}

// HandleUnary registers fn as a connect unary procedure on mux. Messages are
// plain structs encoded as JSON.
func HandleUnary[Req, Res any](mux Router, procedure string, fn func(context.Context, *Req) (*Res, error)) {
	h := connect.NewUnaryHandler(procedure,
		func(ctx context.Context, req *connect.Request[Req]) (*connect.Response[Res], error) {
			res, err := fn(ctx, req.Msg)
			if err != nil {
				return nil, err
			}
			return connect.NewResponse(res), nil
		},
		connect.WithCodec(Codec{}),
		connect.WithInterceptors(LoggingInterceptor()),
	)
	mux.Handle(procedure, h)
}

// Codec is a connect codec for plain Go structs.
type Codec struct{}

func (Codec) Name() string {
	return "json"
}

func (Codec) Marshal(msg any) ([]byte, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("api: marshalling message: %w", err)
	}
	return b, nil
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(msg); err != nil {
		return fmt.Errorf("api: unmarshalling message: %w", err)
	}
	return nil
}

// LoggingInterceptor logs every call with its procedure, caller and duration.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure
			uid := auth.UserID(ctx)

			res, err := next(ctx, req)

			elapsed := time.Since(start)
			var connectErr *connect.Error
			switch {
			case err == nil:
				slog.DebugContext(ctx, "api: rpc ok",
					"procedure", procedure,
					"uid", uid,
					"duration", elapsed,
				)
			case errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal && connectErr.Code() != connect.CodeUnknown:
				slog.WarnContext(ctx, "api: rpc failed",
					"procedure", procedure,
					"uid", uid,
					"code", connectErr.Code(),
					"error", connectErr.Message(),
					"duration", elapsed,
				)
			default:
				slog.ErrorContext(ctx, "api: rpc error",
					"procedure", procedure,
					"uid", uid,
					"error", err,
					"duration", elapsed,
				)
			}
			return res, err
		}
	}
}
