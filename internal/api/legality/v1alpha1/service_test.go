package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	v1alpha1 "github.com/KirkDiggler/rpg-legality/internal/api/legality/v1alpha1"
)

type echoServer struct {
	v1alpha1.UnimplementedLegalityServiceServer
	lastResolve *v1alpha1.ResolveLevelUpRequest
}

func (e *echoServer) ResolveLevelUp(_ context.Context, req *v1alpha1.ResolveLevelUpRequest) (*v1alpha1.ResolveLevelUpResponse, error) {
	e.lastResolve = req
	if req.GetMove() < 0 {
		return nil, status.Error(codes.InvalidArgument, "negative move")
	}
	return &v1alpha1.ResolveLevelUpResponse{
		Outcome:   "learnable",
		Learnable: true,
		Level:     7,
		Version:   req.GetVersion(),
	}, nil
}

type ServiceTestSuite struct {
	suite.Suite
	server *grpc.Server
	conn   *grpc.ClientConn
	echo   *echoServer
	client v1alpha1.LegalityServiceClient
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	lis := bufconn.Listen(1 << 20)
	s.echo = &echoServer{}
	s.server = grpc.NewServer()
	v1alpha1.RegisterLegalityServiceServer(s.server, s.echo)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewLegalityServiceClient(conn)
}

func (s *ServiceTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

func (s *ServiceTestSuite) TestRoundTrip() {
	resp, err := s.client.ResolveLevelUp(context.Background(), &v1alpha1.ResolveLevelUpRequest{
		Creature:   &v1alpha1.Creature{Id: "abc", Species: 25, CurrentLevel: 10, Version: "E", Format: 3},
		Move:       84,
		Generation: 3,
		Version:    "RSE",
	})
	s.Require().NoError(err)
	s.Equal("learnable", resp.Outcome)
	s.True(resp.Learnable)
	s.Equal(int32(7), resp.Level)
	s.Equal("RSE", resp.Version)

	s.Require().NotNil(s.echo.lastResolve)
	s.Equal("abc", s.echo.lastResolve.GetCreature().GetId())
	s.Equal(int32(84), s.echo.lastResolve.GetMove())
}

func (s *ServiceTestSuite) TestStatusPropagates() {
	resp, err := s.client.ResolveLevelUp(context.Background(), &v1alpha1.ResolveLevelUpRequest{Move: -1})
	s.Error(err)
	s.Nil(resp)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *ServiceTestSuite) TestUnimplemented() {
	resp, err := s.client.VerifyBatch(context.Background(), &v1alpha1.VerifyBatchRequest{})
	s.Error(err)
	s.Nil(resp)
	s.Equal(codes.Unimplemented, status.Code(err))
}

func (s *ServiceTestSuite) TestNilGetters() {
	var req *v1alpha1.VerifyLevelRequest
	s.Nil(req.GetCreature())
	s.Nil(req.GetEncounter())
	s.Empty(req.GetCreature().GetId())
	s.Nil(req.GetEncounter().GetGift())
}
