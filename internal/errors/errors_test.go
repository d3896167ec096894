package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "theme not found",
			expected: "NOT_FOUND: theme not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "event is not applied",
			expected: "FAILED_PRECONDITION: event is not applied",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("character not found").
		WithMeta("character_id", "char_1").
		WithMetaMap(map[string]interface{}{"theme_id": "theme_1"})

	s.Equal("char_1", err.Meta["character_id"])
	s.Equal("theme_1", err.Meta["theme_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load character")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load character", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found").WithMeta("event_id", "evt_1")
	wrapped := errors.Wrap(baseErr, "campaign event not found")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("evt_1", wrapped.Meta["event_id"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapMapsContextErrors() {
	s.Equal(errors.CodeCanceled, errors.Wrap(context.Canceled, "tx aborted").Code)
	s.Equal(errors.CodeDeadlineExceeded, errors.Wrap(context.DeadlineExceeded, "tx aborted").Code)
	s.True(errors.IsCanceled(fmt.Errorf("exec: %w", context.Canceled)))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.Internal("boom").WithMeta("key", "value")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeAborted, "transaction conflicted")

	s.Equal(errors.CodeAborted, wrapped.Code)
	s.Equal("value", wrapped.Meta["key"])
	s.True(errors.IsAborted(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.NotFound("user friendly message").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(stdErr))
	s.Equal(errors.CodeOK, errors.GetCode(nil))

	s.Equal("value", errors.GetMeta(wrapped)["key"])
	s.Nil(errors.GetMeta(stdErr))

	s.Equal("wrapped message", errors.GetMessage(wrapped))
	s.Equal("standard error", errors.GetMessage(stdErr))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.NotFound("character not found").
		WithMeta("character_id", "char_1")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("character not found", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeNotFound, errors.GetCode(back))
	s.Equal("char_1", errors.GetMeta(back)["character_id"])
}

func (s *ErrorsTestSuite) TestGRPCPlainErrors() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("disk on fire")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())

	back := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid input"))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(back))
	s.Equal("invalid input", errors.GetMessage(back))

	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeAborted, codes.Aborted},
		{errors.CodeCanceled, codes.Canceled},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}

func (s *ErrorsTestSuite) TestWrapCopiesMeta() {
	inner := errors.NotFound("event not found").WithMeta("event_id", "evt_1")
	outer := errors.Wrap(inner, "failed to apply event").WithMeta("character_id", "char_1")

	s.NotContains(inner.Meta, "character_id")
	s.Equal("evt_1", outer.Meta["event_id"])
}

func (s *ErrorsTestSuite) TestGetMetaMergesChain() {
	inner := errors.OutOfRangef("strength would be %d", 31).WithMeta("ability", "strength")
	plain := fmt.Errorf("impact 1: %w", inner)
	outer := errors.Wrap(plain, "apply failed")
	outer.Meta = map[string]interface{}{"ability": "dexterity", "event_id": "evt_1"}

	meta := errors.GetMeta(outer)
	s.Equal("dexterity", meta["ability"])
	s.Equal("evt_1", meta["event_id"])
	s.True(errors.IsOutOfRange(outer))
}

type impactFailure struct {
	index int
}

func (e *impactFailure) Error() string {
	return fmt.Sprintf("impact %d failed", e.index)
}

func (s *ErrorsTestSuite) TestAsType() {
	err := errors.Wrap(&impactFailure{index: 2}, "apply failed")

	failure, ok := errors.AsType[*impactFailure](err)
	s.Require().True(ok)
	s.Equal(2, failure.index)

	_, ok = errors.AsType[*impactFailure](errors.Unavailablef("redis down"))
	s.False(ok)
	s.True(errors.IsUnavailable(errors.Unavailablef("redis down")))
}
