package server

import (
	"context"
	"log/slog"

	v1 "github.com/shreyescodes/doc-parser-updated/gen/proto/documents/v1"
	"github.com/shreyescodes/doc-parser-updated/internal/common"
	"github.com/shreyescodes/doc-parser-updated/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportCapitalCalls(ctx context.Context, _ *v1.ExportCapitalCallsRequest) (*v1.ExportCapitalCallsResponse, error) {
	xlsx, err := s.svc.ExportCapitalCallsXLSX(ctx)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "sheet", "capital_calls", "err", err)
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportCapitalCallsResponse{Xlsx: xlsx}, nil
}

func (s *ExportServer) ExportDistributions(ctx context.Context, _ *v1.ExportDistributionsRequest) (*v1.ExportDistributionsResponse, error) {
	xlsx, err := s.svc.ExportDistributionsXLSX(ctx)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "sheet", "distributions", "err", err)
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportDistributionsResponse{Xlsx: xlsx}, nil
}
