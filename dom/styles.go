// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package dom

import (
	"strconv"
	"strings"
)

// Size represents a string, percent or numeric values. If an explicit
// zero value is needed, it is best to use the string form
type Size struct {
	Raw     string
	Percent float32
	Pixels  float32
	Em      float32
	En      float32
}

// String converts Size to a string form
func (s Size) String() string {
	var f float32

	suffix := ""
	switch {
	case s.Percent != 0:
		f, suffix = s.Percent, "%"
	case s.Pixels != 0:
		f, suffix = s.Pixels, "px"
	case s.Em != 0:
		f, suffix = s.Em, "em"
	case s.En != 0:
		f, suffix = s.En, "en"
	}

	if f == 0 {
		return s.Raw
	}

	return strconv.FormatFloat(float64(f), 'f', -1, 32) + suffix
}

// Px returns a pixel size, using the explicit "0px" form for zero.
func Px(f float64) Size {
	if f == 0 {
		return Size{Raw: "0px"}
	}
	return Size{Pixels: float32(f)}
}

// FlexNone should be used for a zero grow/shrink
const FlexNone = -1

// Direction represents a Row or Column direction
type Direction int

// All the valid directions
const (
	Row Direction = iota + 1
	Column
	RowReverse
	ColumnReverse
)

// String returns the string version of Direction
func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	case RowReverse:
		return "row-reverse"
	case ColumnReverse:
		return "column-reverse"
	}
	return ""
}

// Borders represents the border of one or all sides.
type Borders struct {
	Raw    string
	Style  string
	Width  Size
	Color  string
	Radius Size
}

func (b Borders) entries(prefix string) [][2]string {
	return [][2]string{
		{prefix, b.Raw},
		{prefix + "-style", b.Style},
		{prefix + "-radius", b.Radius.String()},
		{prefix + "-color", b.Color},
		{prefix + "-width", b.Width.String()},
	}
}

// Styles represents a set of CSS Styles
type Styles struct {
	// Raw is CSS text rendered ahead of the typed fields, usually
	// the inline style of markup that was not built via NewElement
	Raw string

	Color           string
	BackgroundColor string
	BackgroundImage string

	Display  string
	Position string
	ZIndex   int
	Opacity  string

	Left, Top, Right, Bottom Size
	Width, Height            Size
	MinWidth, MinHeight      Size

	Padding                 Size
	MarginLeft, MarginRight Size

	OverflowX, OverflowY string
	FlexDirection        Direction

	// FlexGrow and FlexShrink should not be set to zero.
	// For actual zero value, use FlexNone instead
	FlexGrow, FlexShrink int

	Borders
	BorderTop Borders

	TextAlign  string
	FontSize   Size
	FontWeight string
}

// String converts style to "CSS" text
func (s Styles) String() string {
	entries := [][2]string{
		{"color", s.Color},
		{"background-color", s.BackgroundColor},
		{"background-image", s.BackgroundImage},
		{"position", s.Position},
		{"left", s.Left.String()},
		{"top", s.Top.String()},
		{"right", s.Right.String()},
		{"bottom", s.Bottom.String()},
		{"width", s.Width.String()},
		{"height", s.Height.String()},
		{"min-width", s.MinWidth.String()},
		{"min-height", s.MinHeight.String()},
		{"padding", s.Padding.String()},
		{"margin-left", s.MarginLeft.String()},
		{"margin-right", s.MarginRight.String()},
		{"overflow-x", s.OverflowX},
		{"overflow-y", s.OverflowY},
	}

	if dir := s.FlexDirection.String(); dir != "" {
		entries = append(entries, [][2]string{
			{"display", "flex"},
			{"flex-direction", dir},
		}...)
	} else {
		entries = append(entries, [2]string{"display", s.Display})
	}

	flex := func(i int) string {
		switch {
		case i < 0:
			return "0"
		case i == 0:
			return ""
		default:
			return strconv.FormatInt(int64(i), 10)
		}
	}

	entries = append(entries, [][2]string{
		{"flex-grow", flex(s.FlexGrow)},
		{"flex-shrink", flex(s.FlexShrink)},
	}...)
	entries = append(entries, s.Borders.entries("border")...)
	entries = append(entries, s.BorderTop.entries("border-top")...)

	zIndex := ""
	if s.ZIndex != 0 {
		zIndex = strconv.Itoa(s.ZIndex)
	}
	entries = append(entries, [][2]string{
		{"text-align", s.TextAlign},
		{"font-size", s.FontSize.String()},
		{"font-weight", s.FontWeight},
		{"opacity", s.Opacity},
		{"z-index", zIndex},
	}...)

	result := strings.TrimSuffix(strings.TrimSpace(s.Raw), ";")
	for _, pair := range entries {
		if pair[1] == "" {
			continue
		}
		if result != "" {
			result += "; "
		}
		result += pair[0] + ": " + pair[1]
	}

	return result
}
