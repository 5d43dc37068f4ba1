package proto

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"infinite_ttt/internal/domain/game"
	errs "infinite_ttt/internal/errors"
)

// MoveReply is the decoded SelectMove response.
type MoveReply struct {
	Index    int
	Depth    int
	Complete bool
}

func EncodeMoveRequest(req game.MoveRequest) (*structpb.Struct, error) {
	board := make([]interface{}, len(req.Board))
	for i, c := range req.Board {
		board[i] = c
	}
	return structpb.NewStruct(map[string]interface{}{
		"board":  board,
		"xQueue": intsToList(req.XQueue),
		"oQueue": intsToList(req.OQueue),
		"side":   req.Side,
	})
}

func DecodeMoveRequest(s *structpb.Struct) (game.MoveRequest, error) {
	var req game.MoveRequest
	fields := s.GetFields()

	for _, v := range fields["board"].GetListValue().GetValues() {
		str, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return req, fmt.Errorf("%w: board cell is not a string", errs.ErrInvalidBoard)
		}
		req.Board = append(req.Board, str.StringValue)
	}

	var err error
	if req.XQueue, err = listToInts(fields["xQueue"]); err != nil {
		return req, fmt.Errorf("%w: xQueue: %v", errs.ErrInvalidQueue, err)
	}
	if req.OQueue, err = listToInts(fields["oQueue"]); err != nil {
		return req, fmt.Errorf("%w: oQueue: %v", errs.ErrInvalidQueue, err)
	}
	req.Side = fields["side"].GetStringValue()
	return req, nil
}

func EncodeMoveReply(r MoveReply) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"index":    r.Index,
		"depth":    r.Depth,
		"complete": r.Complete,
	})
}

func DecodeMoveReply(s *structpb.Struct) (MoveReply, error) {
	fields := s.GetFields()
	idx, err := toInt(fields["index"])
	if err != nil {
		return MoveReply{}, fmt.Errorf("index: %w", err)
	}
	depth, err := toInt(fields["depth"])
	if err != nil {
		return MoveReply{}, fmt.Errorf("depth: %w", err)
	}
	return MoveReply{
		Index:    idx,
		Depth:    depth,
		Complete: fields["complete"].GetBoolValue(),
	}, nil
}

func intsToList(values []int) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func listToInts(v *structpb.Value) ([]int, error) {
	values := v.GetListValue().GetValues()
	out := make([]int, 0, len(values))
	for _, item := range values {
		n, err := toInt(item)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func toInt(v *structpb.Value) (int, error) {
	num, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("expected a number")
	}
	if num.NumberValue != math.Trunc(num.NumberValue) {
		return 0, fmt.Errorf("%v is not an integer", num.NumberValue)
	}
	return int(num.NumberValue), nil
}
