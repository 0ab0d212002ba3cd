package component

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/obeliskdev/mcchat/snbt"
)

const (
	actionShowText   = "show_text"
	actionShowItem   = "show_item"
	actionShowEntity = "show_entity"
)

// HoverEvent is the tooltip shown while the component is hovered.
type HoverEvent interface {
	hoverAction() string
}

type ShowText struct {
	Text Chat
}

type ShowItem struct {
	Item ItemStack
}

type ShowEntity struct {
	Entity EntityTooltip
}

func (ShowText) hoverAction() string   { return actionShowText }
func (ShowItem) hoverAction() string   { return actionShowItem }
func (ShowEntity) hoverAction() string { return actionShowEntity }

// ItemStack describes the item of a show_item tooltip. Tag is an opaque
// compound in its string form.
type ItemStack struct {
	ID    string
	Count *int32
	Tag   *string
}

type EntityTooltip struct {
	Name *Chat
	Type *string
	ID   uuid.NullUUID
}

// hover renders the event the way the target version expects it: before
// 1.16 the payload sits in "value" and items and entities are record strings,
// from 1.16 on it sits in "contents" as structured objects.
func (e *encoder) hover(event HoverEvent) map[string]any {
	if e.caps.StructuredHover {
		return map[string]any{
			"action":   event.hoverAction(),
			"contents": e.hoverContents(event),
		}
	}
	return map[string]any{
		"action": event.hoverAction(),
		"value":  e.hoverValue(event),
	}
}

func (e *encoder) hoverContents(event HoverEvent) any {
	switch h := event.(type) {
	case ShowText:
		return e.chat(h.Text)
	case ShowItem:
		item := map[string]any{"id": h.Item.ID}
		if h.Item.Count != nil {
			item["Count"] = *h.Item.Count
		}
		if h.Item.Tag != nil {
			item["tag"] = *h.Item.Tag
		}
		return item
	case ShowEntity:
		entity := make(map[string]any)
		if h.Entity.Name != nil {
			entity["name"] = e.chat(*h.Entity.Name)
		}
		if h.Entity.Type != nil {
			entity["type"] = *h.Entity.Type
		}
		if h.Entity.ID.Valid {
			entity["id"] = h.Entity.ID.UUID.String()
		}
		return entity
	}
	return nil
}

func (e *encoder) hoverValue(event HoverEvent) any {
	switch h := event.(type) {
	case ShowText:
		return e.chat(h.Text)
	case ShowItem:
		record := snbt.Record{{Name: "id", Value: h.Item.ID}}
		if h.Item.Count != nil {
			record = append(record, snbt.Field{Name: "Count", Value: *h.Item.Count})
		}
		if h.Item.Tag != nil {
			record = append(record, snbt.Field{Name: "tag", Value: *h.Item.Tag})
		}
		return e.records.Marshal(record)
	case ShowEntity:
		// Entity records are written bare, in the order the game uses:
		// {id:f84c6a79-0a4e-45e0-879b-cd49ebd4c4e2,name:Herobrine}.
		var record snbt.Record
		if h.Entity.ID.Valid {
			record = append(record, snbt.Field{Name: "id", Value: h.Entity.ID.UUID.String(), Bare: true})
		}
		if h.Entity.Name != nil {
			record = append(record, snbt.Field{Name: "name", Value: e.entityName(*h.Entity.Name), Bare: true})
		}
		if h.Entity.Type != nil {
			record = append(record, snbt.Field{Name: "type", Value: *h.Entity.Type, Bare: true})
		}
		return e.records.Marshal(record)
	}
	return nil
}

// entityName writes a plain name as-is, the way old clients expect it, and
// anything richer as component JSON.
func (e *encoder) entityName(name Chat) string {
	if text, ok := name.Kind.(Text); ok && name.Style.IsZero() && len(name.Extra) == 0 && !looksLikeJSON(text.Text) {
		return text.Text
	}
	data, err := marshalValue(e.chat(name))
	if err != nil {
		return name.String()
	}
	return string(data)
}

func looksLikeJSON(s string) bool {
	s = strings.TrimLeft(s, " \t\r\n")
	return s != "" && strings.IndexByte(`{["`, s[0]) >= 0
}

func (d *decoder) hover(raw any, depth int) (HoverEvent, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("hoverEvent: %w: got %T", ErrInvalidField, raw)
	}

	rawAction, ok := obj["action"]
	if !ok {
		return nil, fmt.Errorf("hoverEvent: %w: %q", ErrMissingField, "action")
	}
	action, ok := rawAction.(string)
	if !ok {
		return nil, fmt.Errorf("hoverEvent.action: %w: got %T", ErrInvalidField, rawAction)
	}
	switch action {
	case actionShowText, actionShowItem, actionShowEntity:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHoverAction, action)
	}

	if contents, ok := obj["contents"]; ok {
		return d.hoverContents(action, contents, depth)
	}
	if value, ok := obj["value"]; ok {
		return d.hoverValue(action, value, depth)
	}
	return nil, fmt.Errorf("hoverEvent: %w: %q", ErrMissingField, "contents")
}

func (d *decoder) hoverText(action string, raw any, depth int) (HoverEvent, error) {
	if !isChatShape(raw) {
		return nil, fmt.Errorf("%w: %s expects a component, got %T", ErrHoverValueTypeMismatch, action, raw)
	}
	text, err := d.chat(raw, depth)
	if err != nil {
		return nil, fmt.Errorf("hoverEvent: %w", err)
	}
	return ShowText{Text: text}, nil
}

func (d *decoder) hoverContents(action string, raw any, depth int) (HoverEvent, error) {
	switch action {
	case actionShowText:
		return d.hoverText(action, raw, depth)
	case actionShowItem:
		if id, ok := raw.(string); ok {
			return ShowItem{Item: ItemStack{ID: id}}, nil
		}
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects an object, got %T", ErrHoverValueTypeMismatch, action, raw)
		}
		item, err := itemFromObject(obj)
		if err != nil {
			return nil, err
		}
		return ShowItem{Item: item}, nil
	default:
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects an object, got %T", ErrHoverValueTypeMismatch, action, raw)
		}
		entity, err := d.entityFromObject(obj, depth)
		if err != nil {
			return nil, err
		}
		return ShowEntity{Entity: entity}, nil
	}
}

func (d *decoder) hoverValue(action string, raw any, depth int) (HoverEvent, error) {
	if action == actionShowText {
		return d.hoverText(action, raw, depth)
	}

	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a record string, got %T", ErrHoverValueTypeMismatch, action, raw)
	}
	record, err := d.records.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrHoverValueTypeMismatch, action, err)
	}

	if action == actionShowItem {
		item, err := itemFromRecord(record)
		if err != nil {
			return nil, err
		}
		return ShowItem{Item: item}, nil
	}
	entity, err := d.entityFromRecord(record, depth)
	if err != nil {
		return nil, err
	}
	return ShowEntity{Entity: entity}, nil
}

func itemFromObject(obj map[string]any) (ItemStack, error) {
	id, ok := obj["id"].(string)
	if !ok {
		return ItemStack{}, missingOrMismatch(obj, "id")
	}
	item := ItemStack{ID: id}

	for _, key := range []string{"Count", "count"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		count, ok := asInt32(raw)
		if !ok {
			return ItemStack{}, fmt.Errorf("%w: item %s must be an integer", ErrHoverValueTypeMismatch, key)
		}
		item.Count = lo.ToPtr(count)
		break
	}
	if raw, ok := obj["tag"]; ok {
		tag, ok := raw.(string)
		if !ok {
			return ItemStack{}, fmt.Errorf("%w: item tag must be a string", ErrHoverValueTypeMismatch)
		}
		item.Tag = lo.ToPtr(tag)
	}
	return item, nil
}

func itemFromRecord(record snbt.Record) (ItemStack, error) {
	id, ok := record.String("id")
	if !ok {
		return ItemStack{}, recordMissingOrMismatch(record, "id")
	}
	item := ItemStack{ID: id}

	if _, ok := record.Get("Count"); ok {
		n, ok := record.Int("Count")
		if !ok || n < -1<<31 || n > 1<<31-1 {
			return ItemStack{}, fmt.Errorf("%w: item Count must be an integer", ErrHoverValueTypeMismatch)
		}
		item.Count = lo.ToPtr(int32(n))
	}
	if _, ok := record.Get("tag"); ok {
		tag, ok := record.String("tag")
		if !ok {
			return ItemStack{}, fmt.Errorf("%w: item tag must be a string", ErrHoverValueTypeMismatch)
		}
		item.Tag = lo.ToPtr(tag)
	}
	return item, nil
}

func (d *decoder) entityFromObject(obj map[string]any, depth int) (EntityTooltip, error) {
	var entity EntityTooltip
	if raw, ok := obj["name"]; ok {
		if !isChatShape(raw) {
			return EntityTooltip{}, fmt.Errorf("%w: entity name must be a component, got %T", ErrHoverValueTypeMismatch, raw)
		}
		name, err := d.chat(raw, depth)
		if err != nil {
			return EntityTooltip{}, fmt.Errorf("hoverEvent entity name: %w", err)
		}
		entity.Name = &name
	}
	if raw, ok := obj["type"]; ok {
		kind, ok := raw.(string)
		if !ok {
			return EntityTooltip{}, fmt.Errorf("%w: entity type must be a string", ErrHoverValueTypeMismatch)
		}
		entity.Type = lo.ToPtr(kind)
	}
	if raw, ok := obj["id"]; ok {
		s, ok := raw.(string)
		if !ok {
			return EntityTooltip{}, fmt.Errorf("%w: entity id must be a string", ErrHoverValueTypeMismatch)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return EntityTooltip{}, fmt.Errorf("%w: entity id: %w", ErrHoverValueTypeMismatch, err)
		}
		entity.ID = uuid.NullUUID{UUID: id, Valid: true}
	}
	return entity, nil
}

func (d *decoder) entityFromRecord(record snbt.Record, depth int) (EntityTooltip, error) {
	var entity EntityTooltip
	if _, ok := record.Get("name"); ok {
		s, ok := recordText(record, "name")
		if !ok {
			return EntityTooltip{}, fmt.Errorf("%w: entity name must be a string", ErrHoverValueTypeMismatch)
		}
		name := d.entityName(s, depth)
		entity.Name = &name
	}
	if _, ok := record.Get("type"); ok {
		kind, ok := recordText(record, "type")
		if !ok {
			return EntityTooltip{}, fmt.Errorf("%w: entity type must be a string", ErrHoverValueTypeMismatch)
		}
		entity.Type = lo.ToPtr(kind)
	}
	if _, ok := record.Get("id"); ok {
		s, ok := record.String("id")
		if !ok {
			return EntityTooltip{}, fmt.Errorf("%w: entity id must be a string", ErrHoverValueTypeMismatch)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return EntityTooltip{}, fmt.Errorf("%w: entity id: %w", ErrHoverValueTypeMismatch, err)
		}
		entity.ID = uuid.NullUUID{UUID: id, Valid: true}
	}
	return entity, nil
}

// recordText reads a field as text. A bare number such as {name:123} is
// the name the game would show, so it comes back as its decimal form.
func recordText(record snbt.Record, key string) (string, bool) {
	if s, ok := record.String(key); ok {
		return s, true
	}
	if n, ok := record.Int(key); ok {
		return strconv.FormatInt(n, 10), true
	}
	return "", false
}

// entityName accepts both plain names and component JSON.
func (d *decoder) entityName(s string, depth int) Chat {
	if looksLikeJSON(s) {
		if name, err := d.unmarshal([]byte(s), depth); err == nil {
			return name
		}
	}
	return NewText(s)
}

func missingOrMismatch(obj map[string]any, key string) error {
	if _, ok := obj[key]; !ok {
		return fmt.Errorf("hoverEvent: %w: %q", ErrMissingField, key)
	}
	return fmt.Errorf("%w: %s must be a string", ErrHoverValueTypeMismatch, key)
}

func recordMissingOrMismatch(record snbt.Record, key string) error {
	if _, ok := record.Get(key); !ok {
		return fmt.Errorf("hoverEvent: %w: %q", ErrMissingField, key)
	}
	return fmt.Errorf("%w: %s must be a string", ErrHoverValueTypeMismatch, key)
}
