package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/theta-arc/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestDomainConstructors() {
	testCases := []struct {
		name     string
		err      *errors.Error
		code     errors.Code
		check    func(error) bool
		expected string
	}{
		{
			name:     "invalid state",
			err:      errors.InvalidState("a boss is already active"),
			code:     errors.CodeFailedPrecondition,
			check:    errors.IsInvalidState,
			expected: "FAILED_PRECONDITION: a boss is already active",
		},
		{
			name:     "insufficient resources",
			err:      errors.InsufficientResourcesf("need %d gold", 40),
			code:     errors.CodeResourceExhausted,
			check:    errors.IsInsufficientResources,
			expected: "RESOURCE_EXHAUSTED: need 40 gold",
		},
		{
			name:     "stale",
			err:      errors.Stale("ownership changed"),
			code:     errors.CodeAborted,
			check:    errors.IsStale,
			expected: "ABORTED: ownership changed",
		},
		{
			name:     "not found",
			err:      errors.NotFoundf("no TAC #%d", 7),
			code:     errors.CodeNotFound,
			check:    errors.IsNotFound,
			expected: "NOT_FOUND: no TAC #7",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.code, tc.err.Code)
			s.Assert().True(tc.check(tc.err))
			s.Assert().Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	original := errors.InvalidState("already placed")
	wrapped := errors.Wrap(original, "failed to add to astral")

	s.Assert().Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Assert().Equal("failed to add to astral", wrapped.Message)
	s.Assert().ErrorIs(wrapped, original)
}

func (s *ErrorsTestSuite) TestWrapPlainErrorIsInternal() {
	wrapped := errors.Wrapf(fmt.Errorf("connection reset"), "failed to load %s", "account")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Contains(wrapped.Error(), "connection reset")
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("redis: nil"), errors.CodeNotFound, "account not found")

	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestPlayerMessage() {
	s.Run("domain errors show their message", func() {
		err := errors.Wrap(errors.PermissionDenied("only the target can accept"), "accept failed")
		s.Assert().Equal("accept failed", errors.PlayerMessage(err))
	})

	s.Run("internal errors are masked", func() {
		err := errors.Internal("redis write failed")
		s.Assert().NotContains(errors.PlayerMessage(err), "redis")
	})

	s.Run("plain errors are masked", func() {
		s.Assert().NotContains(errors.PlayerMessage(fmt.Errorf("boom")), "boom")
	})

	s.Run("nil is empty", func() {
		s.Assert().Empty(errors.PlayerMessage(nil))
	})
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeAborted, errors.GetCode(errors.Stale("x")))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	s.Run("no fields", func() {
		s.Assert().NoError(errors.NewValidationBuilder().Build())
	})

	s.Run("collects fields", func() {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("AccountRepo")
		errors.ValidateRange("level", 0, 1, 10, vb)

		err := vb.Build()
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidArgument(err))
		s.Assert().Contains(err.Error(), "AccountRepo: is required")
		s.Assert().Contains(err.Error(), "level: must be between 1 and 10")
	})
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	s.Run("code and metadata round trip", func() {
		original := errors.InsufficientResources("not enough gold").
			WithMeta("needed", 40).
			WithMeta("user_id", "42")

		grpcErr := errors.ToGRPCError(original)
		st, ok := status.FromError(grpcErr)
		s.Require().True(ok)
		s.Assert().Equal(codes.ResourceExhausted, st.Code())

		back := errors.FromGRPCError(grpcErr)
		s.Assert().True(errors.IsInsufficientResources(back))
		s.Assert().Equal("not enough gold", errors.GetMessage(back))
		s.Assert().Equal("42", errors.GetMeta(back)["user_id"])
		s.Assert().EqualValues(40, errors.GetMeta(back)["needed"])
	})

	s.Run("plain errors become internal", func() {
		st, _ := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
		s.Assert().Equal(codes.Internal, st.Code())
	})

	s.Run("nil stays nil", func() {
		s.Assert().NoError(errors.ToGRPCError(nil))
		s.Assert().NoError(errors.FromGRPCError(nil))
	})
}
