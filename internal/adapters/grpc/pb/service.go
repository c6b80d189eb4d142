package fileindexerpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	FileIndexer_IndexFile_FullMethodName            = "/file_indexer.FileIndexer/IndexFile"
	FileIndexer_SearchFileByContents_FullMethodName = "/file_indexer.FileIndexer/SearchFileByContents"
	FileIndexer_FindDuplicatedFiles_FullMethodName  = "/file_indexer.FileIndexer/FindDuplicatedFiles"
)

// FileIndexerServer is the server API for the FileIndexer service.
type FileIndexerServer interface {
	IndexFile(context.Context, *IndexFileQuery) (*Empty, error)
	SearchFileByContents(context.Context, *SearchFileByContentsQuery) (*SearchFileResponse, error)
	FindDuplicatedFiles(context.Context, *FindDuplicatedFilesQuery) (*FindDuplicatedFilesResponse, error)
}

// UnimplementedFileIndexerServer can be embedded for forward compatibility.
type UnimplementedFileIndexerServer struct{}

func (UnimplementedFileIndexerServer) IndexFile(context.Context, *IndexFileQuery) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method IndexFile not implemented")
}

func (UnimplementedFileIndexerServer) SearchFileByContents(context.Context, *SearchFileByContentsQuery) (*SearchFileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchFileByContents not implemented")
}

func (UnimplementedFileIndexerServer) FindDuplicatedFiles(context.Context, *FindDuplicatedFilesQuery) (*FindDuplicatedFilesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FindDuplicatedFiles not implemented")
}

func RegisterFileIndexerServer(s grpc.ServiceRegistrar, srv FileIndexerServer) {
	s.RegisterService(&FileIndexer_ServiceDesc, srv)
}

func _FileIndexer_IndexFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IndexFileQuery)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileIndexerServer).IndexFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FileIndexer_IndexFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FileIndexerServer).IndexFile(ctx, req.(*IndexFileQuery))
	}
	return interceptor(ctx, in, info, handler)
}

func _FileIndexer_SearchFileByContents_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchFileByContentsQuery)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileIndexerServer).SearchFileByContents(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FileIndexer_SearchFileByContents_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FileIndexerServer).SearchFileByContents(ctx, req.(*SearchFileByContentsQuery))
	}
	return interceptor(ctx, in, info, handler)
}

func _FileIndexer_FindDuplicatedFiles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FindDuplicatedFilesQuery)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileIndexerServer).FindDuplicatedFiles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FileIndexer_FindDuplicatedFiles_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FileIndexerServer).FindDuplicatedFiles(ctx, req.(*FindDuplicatedFilesQuery))
	}
	return interceptor(ctx, in, info, handler)
}

// FileIndexer_ServiceDesc is the grpc.ServiceDesc for the FileIndexer service.
var FileIndexer_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "file_indexer.FileIndexer",
	HandlerType: (*FileIndexerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IndexFile",
			Handler:    _FileIndexer_IndexFile_Handler,
		},
		{
			MethodName: "SearchFileByContents",
			Handler:    _FileIndexer_SearchFileByContents_Handler,
		},
		{
			MethodName: "FindDuplicatedFiles",
			Handler:    _FileIndexer_FindDuplicatedFiles_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "file_indexer.proto",
}

// FileIndexerClient is the client API for the FileIndexer service.
type FileIndexerClient interface {
	IndexFile(ctx context.Context, in *IndexFileQuery, opts ...grpc.CallOption) (*Empty, error)
	SearchFileByContents(ctx context.Context, in *SearchFileByContentsQuery, opts ...grpc.CallOption) (*SearchFileResponse, error)
	FindDuplicatedFiles(ctx context.Context, in *FindDuplicatedFilesQuery, opts ...grpc.CallOption) (*FindDuplicatedFilesResponse, error)
}

type fileIndexerClient struct {
	cc grpc.ClientConnInterface
}

func NewFileIndexerClient(cc grpc.ClientConnInterface) FileIndexerClient {
	return &fileIndexerClient{cc: cc}
}

func (c *fileIndexerClient) IndexFile(ctx context.Context, in *IndexFileQuery, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := c.cc.Invoke(ctx, FileIndexer_IndexFile_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fileIndexerClient) SearchFileByContents(ctx context.Context, in *SearchFileByContentsQuery, opts ...grpc.CallOption) (*SearchFileResponse, error) {
	out := new(SearchFileResponse)
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := c.cc.Invoke(ctx, FileIndexer_SearchFileByContents_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fileIndexerClient) FindDuplicatedFiles(ctx context.Context, in *FindDuplicatedFilesQuery, opts ...grpc.CallOption) (*FindDuplicatedFilesResponse, error) {
	out := new(FindDuplicatedFilesResponse)
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := c.cc.Invoke(ctx, FileIndexer_FindDuplicatedFiles_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
