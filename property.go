package easel

import "log/slog"

// LayerProperty identifies a single settable layer field. Property edits
// travel through SetPropertyCommand as (property, old value, new value)
// triples, so one command type covers every field of every layer kind.
type LayerProperty int

const (
	PropName LayerProperty = iota
	PropVisible
	PropOpacity
	PropBlend
	PropPosition
	PropLocked
	PropEffects
	PropExpanded

	PropText
	PropFontFamily
	PropFontSize
	PropTextColor
	PropBold
	PropItalic
	PropAlignment
	PropLineHeight
	PropLetterSpacing
	PropWritingMode
	PropUnderline
	PropStrikethrough
	PropTextBounds
)

// String returns the user-facing name of the property.
func (p LayerProperty) String() string {
	switch p {
	case PropName:
		return "name"
	case PropVisible:
		return "visibility"
	case PropOpacity:
		return "opacity"
	case PropBlend:
		return "blend mode"
	case PropPosition:
		return "position"
	case PropLocked:
		return "lock"
	case PropEffects:
		return "effects"
	case PropExpanded:
		return "expanded"
	case PropText:
		return "text"
	case PropFontFamily:
		return "font family"
	case PropFontSize:
		return "font size"
	case PropTextColor:
		return "text color"
	case PropBold:
		return "bold"
	case PropItalic:
		return "italic"
	case PropAlignment:
		return "alignment"
	case PropLineHeight:
		return "line height"
	case PropLetterSpacing:
		return "letter spacing"
	case PropWritingMode:
		return "writing mode"
	case PropUnderline:
		return "underline"
	case PropStrikethrough:
		return "strikethrough"
	case PropTextBounds:
		return "text bounds"
	default:
		return "unknown"
	}
}

// propertyValue reads the current value of prop from layer, or nil when
// the property does not apply to the layer's kind.
func propertyValue(layer Layer, prop LayerProperty) any {
	if layer == nil {
		return nil
	}
	b := layer.Base()
	switch prop {
	case PropName:
		return b.Name
	case PropVisible:
		return b.Visible
	case PropOpacity:
		return b.Opacity
	case PropBlend:
		return b.Blend
	case PropPosition:
		return b.Position
	case PropLocked:
		return b.Locked
	case PropEffects:
		return b.Effects
	}

	switch l := layer.(type) {
	case *GroupLayer:
		if prop == PropExpanded {
			return l.Expanded
		}
	case *TextLayer:
		switch prop {
		case PropText:
			return l.Text
		case PropFontFamily:
			return l.FontFamily
		case PropFontSize:
			return l.FontSize
		case PropTextColor:
			return l.Color
		case PropBold:
			return l.Bold
		case PropItalic:
			return l.Italic
		case PropAlignment:
			return l.Alignment
		case PropLineHeight:
			return l.LineHeight
		case PropLetterSpacing:
			return l.LetterSpacing
		case PropWritingMode:
			return l.WritingMode
		case PropUnderline:
			return l.Underline
		case PropStrikethrough:
			return l.Strikethrough
		case PropTextBounds:
			return l.TextBounds
		}
	}
	return nil
}

// setProperty writes value into prop on layer, clamping to the property's
// domain. A nil layer, a property that does not apply to the layer's kind,
// or a value of the wrong type is a silent no-op. A nil value clears the
// nilable properties (effects, text bounds) and is ignored elsewhere.
func setProperty(layer Layer, prop LayerProperty, value any) {
	if layer == nil {
		return
	}
	b := layer.Base()
	switch prop {
	case PropName:
		if v, ok := value.(string); ok {
			b.Name = v
		}
		return
	case PropVisible:
		if v, ok := value.(bool); ok {
			b.Visible = v
		}
		return
	case PropOpacity:
		if v, ok := value.(float64); ok {
			b.Opacity = clamp01(v)
		}
		return
	case PropBlend:
		if v, ok := value.(BlendMode); ok {
			b.Blend = v
		}
		return
	case PropPosition:
		if v, ok := value.(Point); ok {
			b.Position = v
		}
		return
	case PropLocked:
		if v, ok := value.(bool); ok {
			b.Locked = v
		}
		return
	case PropEffects:
		if value == nil {
			b.Effects = nil
		} else if v, ok := value.([]LayerEffect); ok {
			b.Effects = v
		}
		return
	}

	switch l := layer.(type) {
	case *GroupLayer:
		if prop == PropExpanded {
			if v, ok := value.(bool); ok {
				l.Expanded = v
			}
		}
	case *TextLayer:
		setTextProperty(l, prop, value)
	default:
		Logger().Debug("property does not apply",
			slog.String("property", prop.String()),
			slog.String("kind", layer.Kind().String()))
	}
}

func setTextProperty(l *TextLayer, prop LayerProperty, value any) {
	switch prop {
	case PropText:
		if v, ok := value.(string); ok {
			l.Text = v
		}
	case PropFontFamily:
		if v, ok := value.(string); ok {
			l.FontFamily = v
		}
	case PropFontSize:
		if v, ok := value.(float64); ok && v > 0 {
			l.FontSize = v
		}
	case PropTextColor:
		if v, ok := value.(RGBA); ok {
			l.Color = v.Clamp()
		}
	case PropBold:
		if v, ok := value.(bool); ok {
			l.Bold = v
		}
	case PropItalic:
		if v, ok := value.(bool); ok {
			l.Italic = v
		}
	case PropAlignment:
		if v, ok := value.(Alignment); ok {
			l.Alignment = v
		}
	case PropLineHeight:
		if v, ok := value.(float64); ok && v >= 0 {
			l.LineHeight = v
		}
	case PropLetterSpacing:
		if v, ok := value.(float64); ok {
			l.LetterSpacing = v
		}
	case PropWritingMode:
		if v, ok := value.(WritingMode); ok {
			l.WritingMode = v
		}
	case PropUnderline:
		if v, ok := value.(bool); ok {
			l.Underline = v
		}
	case PropStrikethrough:
		if v, ok := value.(bool); ok {
			l.Strikethrough = v
		}
	case PropTextBounds:
		if value == nil {
			l.TextBounds = nil
		} else if v, ok := value.(*Size); ok {
			l.TextBounds = v
		}
	}
}
