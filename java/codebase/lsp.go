package codebase

import (
	"context"
	"fmt"

	"github.com/dhamidi/javaslice/java"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "javaslice"

// SliceCommand is the workspace/executeCommand that slices a seed. Its
// single argument is the seed string, e.g. "com.acme.Foo#bar".
const SliceCommand = "javaslice.slice"

// Slicer computes the slice of seed over c. The result is sent back to the
// client as JSON. It runs inside Codebase.View, so watcher and editor
// updates wait until it returns.
type Slicer func(c *Codebase, seed string) (any, error)

type LSPServer struct {
	codebase *Codebase
	options  []Option
	slicer   Slicer
	watcher  *FileWatcher
	handler  protocol.Handler
	server   *server.Server
	version  string
}

func NewLSPServer(version string, slicer Slicer, opts ...Option) *LSPServer {
	ls := &LSPServer{
		version: version,
		slicer:  slicer,
		options: opts,
	}

	ls.handler = protocol.Handler{
		Initialize:              ls.initialize,
		Initialized:             ls.initialized,
		Shutdown:                ls.shutdown,
		SetTrace:                ls.setTrace,
		TextDocumentDidOpen:     ls.textDocumentDidOpen,
		TextDocumentDidChange:   ls.textDocumentDidChange,
		TextDocumentDidClose:    ls.textDocumentDidClose,
		TextDocumentDidSave:     ls.textDocumentDidSave,
		WorkspaceExecuteCommand: ls.workspaceExecuteCommand,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootURI != nil && *params.RootURI != "" {
		if path, err := java.PathFromURI(*params.RootURI); err == nil {
			rootDir = path
		}
	} else if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	}

	c, err := New(rootDir, ls.options...)
	if err != nil {
		return nil, err
	}
	ls.codebase = c

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{SliceCommand},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.codebase.ScanAll(context.Background()); err != nil {
		log.Errorf("initial scan: %v", err)
	}
	w, err := NewFileWatcher(ls.codebase)
	if err != nil {
		log.Warningf("file watcher unavailable: %v", err)
		return nil
	}
	if err := w.Start(); err != nil {
		log.Warningf("file watcher unavailable: %v", err)
		return nil
	}
	ls.watcher = w
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
		ls.watcher = nil
	}
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := java.PathFromURI(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	return ls.codebase.UpdateFile(path, []byte(params.TextDocument.Text))
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := java.PathFromURI(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			return ls.codebase.UpdateFile(path, []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := java.PathFromURI(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		return ls.codebase.UpdateFile(path, []byte(*params.Text))
	}
	return ls.codebase.ScanFile(path)
}

func (ls *LSPServer) workspaceExecuteCommand(ctx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	return ls.execute(params.Command, params.Arguments)
}

func (ls *LSPServer) execute(command string, args []any) (any, error) {
	if command != SliceCommand {
		return nil, fmt.Errorf("unknown command %q", command)
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("%s: want 1 argument, got %d", SliceCommand, len(args))
	}
	seed, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%s: seed must be a string, got %T", SliceCommand, args[0])
	}
	if ls.slicer == nil {
		return nil, fmt.Errorf("%s: no slicer configured", SliceCommand)
	}
	log.Infof("slice %s", seed)
	var res any
	err := ls.codebase.View(func() error {
		var err error
		res, err = ls.slicer(ls.codebase, seed)
		return err
	})
	return res, err
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
