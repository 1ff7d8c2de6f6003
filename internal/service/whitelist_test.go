package service

import (
	"reflect"
	"strings"
	"testing"

	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/database/models"
)

func jsonFields(v interface{}) []string {
	rt := reflect.TypeOf(v)
	fields := make([]string, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		tag := rt.Field(i).Tag.Get("json")
		fields = append(fields, strings.Split(tag, ",")[0])
	}
	return fields
}

// The update request types are the operative whitelists; they must stay in
// lockstep with the documented per-table mutable field sets.
func TestUpdateTypesMatchMutableFieldTable(t *testing.T) {
	cases := []struct {
		table string
		req   interface{}
	}{
		{"users", UserUpdate{}},
		{"film", FilmUpdate{}},
		{"menu_item", MenuItemUpdate{}},
		{"orders", OrderUpdate{}},
		{"item", ItemUpdate{}},
	}

	for _, tc := range cases {
		got := jsonFields(tc.req)
		want := models.MutableFields[tc.table]
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: update type fields %v do not match mutable field table %v", tc.table, got, want)
		}
	}
}
