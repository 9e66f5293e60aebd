//go:build !wasm

package userform

import (
	"testing"

	"github.com/vcrobe/userform/internal/form"
	"github.com/vcrobe/userform/testcomponents"
	"github.com/vcrobe/userform/vdom"
)

func renderTable(t *testing.T, table *UsersTable) *vdom.VNode {
	t.Helper()
	return testcomponents.NewTestRenderer(table).Mount()
}

func rowsOf(t *testing.T, table *UsersTable) []*vdom.VNode {
	t.Helper()
	body := testcomponents.Find(renderTable(t, table), testcomponents.ByTag("tbody"))
	if body == nil {
		t.Fatal("tbody not rendered")
	}
	return body.Children
}

func TestUsersTable_AlternatingRowColors(t *testing.T) {
	rows := rowsOf(t, &UsersTable{Users: []form.UserRecord{
		{Name: "Alice", Location: "NY"},
		{Name: "Bob", Location: "LA"},
		{Name: "Carol", Location: "SF"},
	}})
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	want := []string{"white", "lightgray", "white"}
	for i, row := range rows {
		if got := row.Attr("style"); got != "background-color: "+want[i] {
			t.Errorf("row %d style = %q, want background %s", i, got, want[i])
		}
		if RowColor(i) != want[i] {
			t.Errorf("RowColor(%d) = %q, want %q", i, RowColor(i), want[i])
		}
	}
	if rows[1].Children[0].Content != "Bob" || rows[1].Children[1].Content != "LA" {
		t.Errorf("Rows must follow insertion order")
	}
}

func TestUsersTable_EmptyShowsNoUsers(t *testing.T) {
	rows := rowsOf(t, &UsersTable{})
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if got := rows[0].Children[0].Content; got != "No Users" {
		t.Errorf("Expected 'No Users', got %q", got)
	}
}

func TestUsersTable_LoadingHidesData(t *testing.T) {
	rows := rowsOf(t, &UsersTable{
		Loading: true,
		Users:   []form.UserRecord{{Name: "Alice", Location: "NY"}},
	})
	if len(rows) != 1 {
		t.Fatalf("Expected a single loading row, got %d", len(rows))
	}
	if got := rows[0].Children[0].Content; got != "Loading..." {
		t.Errorf("Expected 'Loading...', got %q", got)
	}
}

func TestUsersTable_Header(t *testing.T) {
	head := testcomponents.Find(renderTable(t, &UsersTable{}), testcomponents.ByTag("thead"))
	if head == nil || len(head.Children) != 1 {
		t.Fatal("Expected a single header row")
	}
	cells := head.Children[0].Children
	if len(cells) != 2 || cells[0].Content != "name" || cells[1].Content != "location" {
		t.Errorf("Unexpected header cells")
	}
}

func TestUsersTable_ApplyProps(t *testing.T) {
	table := &UsersTable{}
	table.ApplyProps(&UsersTable{
		Users:   []form.UserRecord{{Name: "Alice", Location: "NY"}},
		Loading: true,
	})
	if len(table.Users) != 1 || !table.Loading {
		t.Errorf("ApplyProps did not copy the props: %+v", table)
	}
}

func TestUserForm_TableInstanceIsReused(t *testing.T) {
	_, renderer := mount(t, staticLocations("NY"), answer(true))
	first := renderer.Child(usersTableKey)
	if first == nil {
		t.Fatal("users table child not mounted")
	}

	typeName(t, renderer, "Alice")
	pickLocation(t, renderer, "NY")
	clickButton(t, renderer, "Add")

	if renderer.Child(usersTableKey) != first {
		t.Errorf("Expected the users table instance to survive re-renders")
	}
	rows := bodyRows(t, renderer)
	if len(rows) != 1 || rows[0].Children[0].Content != "Alice" {
		t.Errorf("Expected the reused table to show the new user")
	}
}
