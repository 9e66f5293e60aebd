package userform

import (
	"github.com/samber/lo"

	"github.com/vcrobe/userform/internal/form"
	"github.com/vcrobe/userform/runtime"
	"github.com/vcrobe/userform/vdom"
)

const (
	usersTableKey = "users-table"
	loadingText   = "Loading..."
	noUsersText   = "No Users"
)

// RowColor returns the background of the data row at index i (0-based).
func RowColor(i int) string {
	if i%2 == 0 {
		return "white"
	}
	return "lightgray"
}

// UsersTable lists the accepted users. UserForm mounts it as a keyed child,
// so one instance lives for the page and takes fresh props on every render.
type UsersTable struct {
	runtime.ComponentBase

	Users   []form.UserRecord
	Loading bool

	rows []*vdom.VNode
}

// ApplyProps copies the props of the freshly constructed table.
func (t *UsersTable) ApplyProps(source runtime.Component) {
	if src, ok := source.(*UsersTable); ok {
		t.Users = src.Users
		t.Loading = src.Loading
	}
}

// OnPropertiesSet rebuilds the body rows. A pending name check hides the
// data behind a single loading row.
func (t *UsersTable) OnPropertiesSet() {
	switch {
	case t.Loading:
		t.rows = []*vdom.VNode{messageRow(loadingText)}
	case len(t.Users) == 0:
		t.rows = []*vdom.VNode{messageRow(noUsersText)}
	default:
		t.rows = lo.Map(t.Users, func(u form.UserRecord, i int) *vdom.VNode {
			return vdom.Tr(map[string]any{
				"class": "table-row",
				"style": "background-color: " + RowColor(i),
			},
				vdom.Td(u.Name, nil),
				vdom.Td(u.Location, nil),
			)
		})
	}
}

func (t *UsersTable) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "table-container"},
		vdom.Table(map[string]any{"class": "users-table"},
			vdom.Element("thead", nil,
				vdom.Tr(map[string]any{"class": "table-row"},
					vdom.Th("name", nil),
					vdom.Th("location", nil),
				),
			),
			vdom.Element("tbody", nil, t.rows...),
		),
	)
}

func messageRow(text string) *vdom.VNode {
	return vdom.Tr(nil, vdom.Td(text, map[string]any{"colspan": "2"}))
}
