package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP streamable HTTP endpoint")
	term := flag.String("search", "", "search text to run after opening")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobboard-smoke-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	listTools(ctx, session)

	var view struct {
		SessionID string `json:"session_id"`
		Status    string `json:"status"`
		Jobs      []struct {
			ID string `json:"id"`
		} `json:"jobs"`
	}
	if !call(ctx, session, "jobs_open", map[string]any{}, &view) {
		return
	}
	sid := view.SessionID
	defer call(ctx, session, "jobs_close", map[string]any{"session_id": sid}, nil)

	call(ctx, session, "jobs_filters", map[string]any{"session_id": sid}, nil)

	if *term != "" {
		call(ctx, session, "jobs_search", map[string]any{"session_id": sid, "term": *term}, &view)
	}

	call(ctx, session, "jobs_stage_filter", map[string]any{
		"session_id":      sid,
		"employment_type": "FULLTIME",
		"included":        true,
		"salary_range":    "1000000",
	}, nil)
	call(ctx, session, "jobs_apply_filters", map[string]any{"session_id": sid}, &view)

	if view.Status == "FAILURE" {
		call(ctx, session, "jobs_retry", map[string]any{"session_id": sid}, &view)
	}

	if len(view.Jobs) > 0 {
		call(ctx, session, "job_details", map[string]any{"job_id": view.Jobs[0].ID}, nil)
		call(ctx, session, "job_details_close", map[string]any{"job_id": view.Jobs[0].ID}, nil)
	}

	call(ctx, session, "jobs_reset_filters", map[string]any{"session_id": sid}, &view)

	fmt.Println("\nSmoke run completed")
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("tools/list failed: %v", err)
		return
	}
	for _, t := range res.Tools {
		fmt.Printf("  %-20s %s\n", t.Name, t.Description)
	}
}

// call invokes a tool, prints its text and decodes it into out when set
func call(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any, out any) bool {
	fmt.Printf("\nTEST: %s\n", name)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return false
	}

	text := printResult(result)
	if result.IsError {
		log.Printf("%s returned a tool error", name)
		return false
	}
	if out != nil {
		if err := json.Unmarshal([]byte(text), out); err != nil {
			log.Printf("%s: decode view: %v", name, err)
			return false
		}
	}
	return true
}

func printResult(res *mcp.CallToolResult) string {
	var last string
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
			last = txt.Text
		}
	}
	return last
}
