package component

import (
	"fmt"
)

const (
	actionOpenURL         = "open_url"
	actionRunCommand      = "run_command"
	actionSuggestCommand  = "suggest_command"
	actionChangePage      = "change_page"
	actionCopyToClipboard = "copy_to_clipboard"
)

// ClickEvent is the action a client performs when the component is clicked.
type ClickEvent interface {
	clickAction() string
}

type OpenURL struct {
	URL string
}

type RunCommand struct {
	Command string
}

type SuggestCommand struct {
	Command string
}

// ChangePage turns a written book to Page.
type ChangePage struct {
	Page uint32
}

// CopyToClipboard is only understood by protocol 558 and later; older
// readers never see it.
type CopyToClipboard struct {
	Text string
}

func (OpenURL) clickAction() string         { return actionOpenURL }
func (RunCommand) clickAction() string      { return actionRunCommand }
func (SuggestCommand) clickAction() string  { return actionSuggestCommand }
func (ChangePage) clickAction() string      { return actionChangePage }
func (CopyToClipboard) clickAction() string { return actionCopyToClipboard }

func encodeClick(event ClickEvent) map[string]any {
	var value any
	switch e := event.(type) {
	case OpenURL:
		value = e.URL
	case RunCommand:
		value = e.Command
	case SuggestCommand:
		value = e.Command
	case ChangePage:
		value = e.Page
	case CopyToClipboard:
		value = e.Text
	}
	return map[string]any{
		"action": event.clickAction(),
		"value":  value,
	}
}

func decodeClick(raw any) (ClickEvent, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("clickEvent: %w: got %T", ErrInvalidField, raw)
	}

	rawAction, ok := obj["action"]
	if !ok {
		return nil, fmt.Errorf("clickEvent: %w: %q", ErrMissingField, "action")
	}
	action, ok := rawAction.(string)
	if !ok {
		return nil, fmt.Errorf("clickEvent.action: %w: got %T", ErrInvalidField, rawAction)
	}
	switch action {
	case actionOpenURL, actionRunCommand, actionSuggestCommand, actionChangePage, actionCopyToClipboard:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClickAction, action)
	}

	value, ok := obj["value"]
	if !ok {
		return nil, fmt.Errorf("clickEvent: %w: %q", ErrMissingField, "value")
	}

	if action == actionChangePage {
		page, ok := asUint32(value)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects an unsigned integer, got %v", ErrClickValueTypeMismatch, action, value)
		}
		return ChangePage{Page: page}, nil
	}

	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a string, got %T", ErrClickValueTypeMismatch, action, value)
	}
	switch action {
	case actionOpenURL:
		return OpenURL{URL: s}, nil
	case actionRunCommand:
		return RunCommand{Command: s}, nil
	case actionSuggestCommand:
		return SuggestCommand{Command: s}, nil
	default:
		return CopyToClipboard{Text: s}, nil
	}
}
