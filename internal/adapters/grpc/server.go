// Package grpcadapter exposes the indexing use cases over the file_indexer
// gRPC service consumed by the desktop front-end.
package grpcadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/dscvr-app/indexer/internal/adapters/grpc/pb"
	"github.com/dscvr-app/indexer/internal/core/domain"
	"github.com/dscvr-app/indexer/internal/core/ports"
	"github.com/dscvr-app/indexer/internal/observability/metrics"
)

// MaxMessageSize bounds both directions of the transport. Batches arrive as
// path lists, so even large scans stay well under it.
const MaxMessageSize = 16777215

type FileIndexerServer struct {
	pb.UnimplementedFileIndexerServer

	indexer    ports.FileIndexer
	searcher   ports.FileSearcher
	duplicates ports.DuplicateFinder
	metrics    *metrics.IndexerMetrics
	log        *slog.Logger
}

func NewFileIndexerServer(
	indexer ports.FileIndexer,
	searcher ports.FileSearcher,
	duplicates ports.DuplicateFinder,
	m *metrics.IndexerMetrics,
	log *slog.Logger,
) *FileIndexerServer {
	return &FileIndexerServer{
		indexer:    indexer,
		searcher:   searcher,
		duplicates: duplicates,
		metrics:    m,
		log:        log,
	}
}

// NewServer builds the grpc.Server with the transport limits and the wire
// codec this service speaks, and registers the FileIndexer implementation.
func NewServer(srv *FileIndexerServer) *grpc.Server {
	s := grpc.NewServer(
		grpc.MaxRecvMsgSize(MaxMessageSize),
		grpc.MaxSendMsgSize(MaxMessageSize),
		grpc.ForceServerCodec(pb.Codec{}),
	)
	pb.RegisterFileIndexerServer(s, srv)
	return s
}

// IndexFile ingests a batch of scanned files. Per-file failures are logged
// and absorbed; only a failed batch commit surfaces to the caller.
func (s *FileIndexerServer) IndexFile(ctx context.Context, req *pb.IndexFileQuery) (*pb.Empty, error) {
	batchID := uuid.NewString()
	started := time.Now()

	files := make([]domain.ScannedFile, 0, len(req.ScannedFiles))
	for _, f := range req.ScannedFiles {
		if f == nil || f.Path == "" {
			continue
		}
		files = append(files, domain.ScannedFile{Path: f.Path})
	}

	s.log.Info("index batch accepted", "batch_id", batchID, "files", len(files))
	s.metrics.StartBatch()

	failed, err := s.indexer.IndexFiles(ctx, files)
	if err != nil {
		s.metrics.FinishBatch(time.Since(started), 0, len(files))
		s.log.Error("index batch rejected", "batch_id", batchID, "error", err)
		return nil, status.Error(codes.Internal, "failed to commit index batch")
	}

	s.metrics.FinishBatch(time.Since(started), len(files)-len(failed), len(failed))
	s.log.Info("index batch finished",
		"batch_id", batchID,
		"indexed", len(files)-len(failed),
		"failed", len(failed),
		"duration", time.Since(started),
	)
	return &pb.Empty{}, nil
}

// SearchFileByContents returns the paths of documents matching the query,
// best matches first. Backend failures yield an empty result, never an error.
func (s *FileIndexerServer) SearchFileByContents(ctx context.Context, req *pb.SearchFileByContentsQuery) (*pb.SearchFileResponse, error) {
	s.metrics.ObserveSearch()
	paths := s.searcher.SearchByContents(ctx, req.Query)
	s.log.Debug("search served", "query", req.Query, "hits", len(paths))
	return &pb.SearchFileResponse{Path: paths}, nil
}

// FindDuplicatedFiles returns groups of indexed files sharing a content hash.
func (s *FileIndexerServer) FindDuplicatedFiles(ctx context.Context, req *pb.FindDuplicatedFilesQuery) (*pb.FindDuplicatedFilesResponse, error) {
	s.metrics.ObserveDuplicateLookup()

	var startingAtPath string
	if req.StartingAtPath != nil {
		startingAtPath = *req.StartingAtPath
	}

	groups := s.duplicates.FindDuplicates(ctx, startingAtPath)
	files := make([]*pb.DuplicatedFile, 0, len(groups))
	for _, g := range groups {
		files = append(files, &pb.DuplicatedFile{
			Paths:          g.Paths,
			AggregatedSize: g.AggregatedSize,
			Duplicates:     g.Duplicates,
			Hash:           g.Hash,
		})
	}
	s.log.Debug("duplicate lookup served", "groups", len(files))
	return &pb.FindDuplicatedFilesResponse{Files: files}, nil
}
