package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-legality/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestWrap() {
	s.Run("preserves code and meta of an existing error", func() {
		base := errors.NotFound("table missing").WithMeta("version", "RB")
		wrapped := errors.Wrap(base, "failed to load")

		s.Equal(errors.CodeNotFound, wrapped.Code)
		s.Equal("failed to load", wrapped.Message)
		s.Equal("RB", wrapped.Meta["version"])
		s.True(stderrors.Is(wrapped, base))
	})

	s.Run("plain errors become internal", func() {
		wrapped := errors.Wrap(stderrors.New("boom"), "failed")
		s.Equal(errors.CodeInternal, wrapped.Code)
		s.Equal("INTERNAL: failed: boom", wrapped.Error())
	})

	s.Run("nil stays nil", func() {
		s.Nil(errors.Wrap(nil, "anything"))
		s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "anything"))
	})

	s.Run("WrapWithCode overrides the code", func() {
		wrapped := errors.WrapWithCode(errors.Internal("x"), errors.CodeUnavailable, "redis down")
		s.True(stderrors.Is(wrapped, errors.Unavailable("")))
	})
}

func (s *ErrorsTestSuite) TestHelpers() {
	testCases := []struct {
		name  string
		err   error
		code  errors.Code
		check func(error) bool
	}{
		{name: "nil", err: nil, code: errors.CodeOK},
		{name: "not found", err: errors.NotFoundf("no %s", "table"), code: errors.CodeNotFound, check: errors.IsNotFound},
		{name: "invalid argument", err: errors.InvalidArgument("bad"), code: errors.CodeInvalidArgument, check: errors.IsInvalidArgument},
		{name: "failed precondition", err: errors.FailedPrecondition("empty"), code: errors.CodeFailedPrecondition, check: errors.IsFailedPrecondition},
		{name: "plain error", err: stderrors.New("plain"), code: errors.CodeInternal, check: errors.IsInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.code, errors.GetCode(tc.err))
			if tc.check != nil {
				s.True(tc.check(tc.err))
			}
		})
	}
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	s.Run("no errors builds nil", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRange("generation", 3, 1, 8, vb)
		errors.ValidateRequired("path", "data.yaml", vb)
		s.NoError(vb.Build())
	})

	s.Run("collects field errors", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRange("generation", 9, 1, 8, vb)
		errors.ValidateRequired("path", " ", vb)
		errors.ValidateEnum("source", "s3", []string{"file", "redis"}, vb)

		err := vb.Build()
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Equal("validation failed: generation: must be between 1 and 8; path: is required; source: must be one of: file, redis",
			errors.GetMessage(err))

		fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
		s.Require().True(ok)
		s.Len(fields, 3)
	})
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	s.Run("code and meta survive", func() {
		err := errors.NotFound("learnset table not found").
			WithMeta("version", "FRLG").
			WithMeta("generation", 3)

		grpcErr := errors.ToGRPCError(err)
		st, ok := status.FromError(grpcErr)
		s.Require().True(ok)
		s.Equal(codes.NotFound, st.Code())

		back := errors.FromGRPCError(grpcErr)
		s.Equal(errors.CodeNotFound, errors.GetCode(back))
		s.Equal("learnset table not found", errors.GetMessage(back))
		meta := errors.GetMeta(back)
		s.Equal("FRLG", meta["version"])
		s.Equal(float64(3), meta["generation"])
	})

	s.Run("unsupported meta values are stringified", func() {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("creature")
		back := errors.FromGRPCError(errors.ToGRPCError(vb.Build()))

		s.True(errors.IsInvalidArgument(back))
		s.Equal("map[creature:[is required]]", errors.GetMeta(back)["validation_errors"])
	})

	s.Run("status errors pass through", func() {
		orig := status.Error(codes.Unavailable, "down")
		s.Equal(orig, errors.ToGRPCError(orig))
	})

	s.Run("plain errors map to internal", func() {
		st, _ := status.FromError(errors.ToGRPCError(stderrors.New("boom")))
		s.Equal(codes.Internal, st.Code())
	})
}
