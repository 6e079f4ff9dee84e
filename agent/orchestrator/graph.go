package orchestrator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	agentnode "github.com/kitnetlab/agent/agent/nodes"
)

// compileTurnGraph wires one turn as a linear graph. The conditional parts
// of the protocol (tool round, second model call) are phase-gated inside
// the nodes, which keeps the edge list static and the phase transitions in
// one place.
func (o *Orchestrator) compileTurnGraph(
	ctx context.Context,
) (compose.Runnable[agentnode.GraphInput, agentnode.GraphOutput], error) {
	graph := compose.NewGraph[agentnode.GraphInput, agentnode.GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in agentnode.GraphInput) (*agentnode.GraphState, error) {
			return agentnode.ValidateRequest(in, o.now)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("resolve_lead",
		compose.InvokableLambda(func(ctx context.Context, in *agentnode.GraphState) (*agentnode.GraphState, error) {
			return agentnode.ResolveLead(ctx, in, o.leads)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node resolve_lead: %w", err)
	}

	if err := graph.AddLambdaNode("load_units",
		compose.InvokableLambda(func(ctx context.Context, in *agentnode.GraphState) (*agentnode.GraphState, error) {
			return agentnode.LoadUnits(ctx, in, o.units)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node load_units: %w", err)
	}

	if err := graph.AddLambdaNode("build_prompt",
		compose.InvokableLambda(func(ctx context.Context, in *agentnode.GraphState) (*agentnode.GraphState, error) {
			return agentnode.BuildPrompt(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node build_prompt: %w", err)
	}

	if err := graph.AddLambdaNode("save_inbound",
		compose.InvokableLambda(func(ctx context.Context, in *agentnode.GraphState) (*agentnode.GraphState, error) {
			return agentnode.SaveInbound(ctx, in, o.messages)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node save_inbound: %w", err)
	}

	if err := graph.AddLambdaNode("load_context",
		compose.InvokableLambda(func(ctx context.Context, in *agentnode.GraphState) (*agentnode.GraphState, error) {
			return agentnode.LoadContext(ctx, in, o.messages, o.contextWindow)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node load_context: %w", err)
	}

	if err := graph.AddLambdaNode("plan_reply",
		compose.InvokableLambda(func(ctx context.Context, in *agentnode.GraphState) (*agentnode.GraphState, error) {
			return agentnode.PlanReply(ctx, in, o.planModel)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node plan_reply: %w", err)
	}

	if err := graph.AddLambdaNode("run_tools",
		compose.InvokableLambda(func(ctx context.Context, in *agentnode.GraphState) (*agentnode.GraphState, error) {
			return agentnode.RunTools(ctx, in, o.tools)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node run_tools: %w", err)
	}

	if err := graph.AddLambdaNode("final_reply",
		compose.InvokableLambda(func(ctx context.Context, in *agentnode.GraphState) (*agentnode.GraphState, error) {
			return agentnode.FinalReply(ctx, in, o.replyModel)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node final_reply: %w", err)
	}

	if err := graph.AddLambdaNode("persist_reply",
		compose.InvokableLambda(func(ctx context.Context, in *agentnode.GraphState) (*agentnode.GraphState, error) {
			return agentnode.PersistReply(ctx, in, o.messages)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node persist_reply: %w", err)
	}

	if err := graph.AddLambdaNode("finalize",
		compose.InvokableLambda(func(ctx context.Context, in *agentnode.GraphState) (agentnode.GraphOutput, error) {
			return agentnode.Finalize(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "resolve_lead"},
		{"resolve_lead", "load_units"},
		{"load_units", "build_prompt"},
		{"build_prompt", "save_inbound"},
		{"save_inbound", "load_context"},
		{"load_context", "plan_reply"},
		{"plan_reply", "run_tools"},
		{"run_tools", "final_reply"},
		{"final_reply", "persist_reply"},
		{"persist_reply", "finalize"},
		{"finalize", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("agent.handle_turn"))
	if err != nil {
		return nil, fmt.Errorf("compile turn graph: %w", err)
	}
	return runner, nil
}
