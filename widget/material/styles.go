// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"latticeui.org/widget"
	"latticeui.org/widget/overlay"
)

func Checkbox(th *Theme) widget.CheckboxStyle {
	active := widget.CheckboxAppearance{
		Background:   th.Bg,
		Checkmark:    th.ContrastBg,
		BorderRadius: 5,
		BorderWidth:  1,
		BorderColor:  mulAlpha(th.Fg, 0x88),
	}
	hovered := active
	hovered.Background = mulAlpha(th.ContrastBg, 0x22)
	return widget.CheckboxStyle{Active: active, Hovered: hovered}
}

func ProgressBar(th *Theme) widget.ProgressBarStyle {
	return widget.ProgressBarStyle{
		Background:   mulAlpha(th.Fg, 0x22),
		Bar:          th.ContrastBg,
		BorderRadius: 5,
	}
}

// Card is a bordered container background.
func Card(th *Theme) widget.ContainerStyle {
	return widget.ContainerStyle{
		Background:   th.Bg,
		BorderRadius: 4,
		BorderWidth:  1,
		BorderColor:  mulAlpha(th.Fg, 0x44),
	}
}

func Menu(th *Theme) overlay.MenuStyle {
	return overlay.MenuStyle{
		Text:               th.Fg,
		Background:         th.Bg,
		BorderWidth:        1,
		BorderColor:        mulAlpha(th.Fg, 0x88),
		SelectedText:       th.ContrastFg,
		SelectedBackground: th.ContrastBg,
	}
}

func PickList(th *Theme) widget.PickListStyle {
	return widget.PickListStyle{
		Text:         th.Fg,
		Background:   th.Bg,
		BorderRadius: 2,
		BorderWidth:  1,
		BorderColor:  mulAlpha(th.Fg, 0x88),
		Menu:         Menu(th),
	}
}
