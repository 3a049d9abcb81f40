package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winbridge/internal/inspect"
	"github.com/1broseidon/winbridge/internal/platform"
)

func summaryFrom(info platform.WindowInfo) WindowSummary {
	return WindowSummary{
		ID:    info.ID,
		PID:   info.PID,
		AppID: info.AppID,
		Title: info.Title,
	}
}

func (s *Server) handleActiveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, _ ActiveWindowInput) (*mcpsdk.CallToolResult, ActiveWindowOutput, error) {
	s.logRequest("active_window")

	owner, info, err := s.backend.ActiveWindow()
	if err != nil {
		return nil, ActiveWindowOutput{}, err
	}

	return nil, ActiveWindowOutput{
		Window: summaryFrom(info),
		Handle: inspect.DescribeHandle(owner.RawWindowHandle()),
	}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	s.logRequest("list_windows")

	infos, err := s.backend.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	out := ListWindowsOutput{Windows: make([]WindowSummary, 0, len(infos))}
	for _, info := range infos {
		out.Windows = append(out.Windows, summaryFrom(info))
	}
	return nil, out, nil
}

func (s *Server) handleWindowHandle(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowHandleInput) (*mcpsdk.CallToolResult, WindowHandleOutput, error) {
	s.logRequest("window_handle", "window_id", args.WindowID)

	owner, err := s.backend.Window(args.WindowID)
	if err != nil {
		return nil, WindowHandleOutput{}, err
	}

	return nil, WindowHandleOutput{
		Handle: inspect.DescribeHandle(owner.RawWindowHandle()),
	}, nil
}
