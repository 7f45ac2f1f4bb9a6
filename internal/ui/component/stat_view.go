package component

import (
	"fmt"
	"strings"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/ui/layout"
)

// StatView shows tlp-stat output read-only.
type StatView struct {
	root    layout.BoxWidget
	header  layout.LabelWidget
	text    layout.TextViewWidget
	refresh layout.ButtonWidget
}

// NewStatView creates the view. onRefresh runs when the Refresh button is clicked.
func NewStatView(f layout.WidgetFactory, onRefresh func()) *StatView {
	v := &StatView{
		root:    f.NewBox(layout.OrientationVertical, 8),
		header:  f.NewLabel("Status not loaded yet."),
		text:    f.NewTextView(),
		refresh: f.NewButton("Refresh"),
	}
	top := f.NewBox(layout.OrientationHorizontal, 8)
	v.header.SetHexpand(true)
	v.header.SetXalign(0)
	top.Append(v.header)
	connect(v.refresh, onRefresh)
	top.Append(v.refresh)

	scroll := f.NewScrolled()
	scroll.SetVexpand(true)
	scroll.SetChild(v.text)

	v.root.Append(top)
	v.root.Append(scroll)
	return v
}

func (v *StatView) Widget() layout.Widget { return v.root }

// SetLoading disables Refresh while a run is in flight.
func (v *StatView) SetLoading(loading bool) {
	v.refresh.SetSensitive(!loading)
	if loading {
		v.header.SetText("Running tlp-stat...")
	}
}

// ShowReport renders every section under its title.
func (v *StatView) ShowReport(r *entity.StatReport) {
	v.SetLoading(false)
	v.header.SetText(fmt.Sprintf("%s at %s", r.Command, r.FetchedAt.Format("15:04:05")))
	v.text.SetText(FormatStatReport(r))
}

// ShowError replaces the text with the failure.
func (v *StatView) ShowError(err error) {
	v.SetLoading(false)
	v.header.SetText("Status unavailable")
	v.text.SetText(err.Error())
}

// FormatStatReport renders sections as "Title" underlined blocks.
func FormatStatReport(r *entity.StatReport) string {
	var sb strings.Builder
	for i, s := range r.Sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		if s.Title != "" {
			sb.WriteString(s.Title)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat("-", len(s.Title)))
			sb.WriteString("\n")
		}
		for _, l := range s.Lines {
			sb.WriteString(l)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
