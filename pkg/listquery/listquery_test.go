package listquery

import (
	"reflect"
	"testing"
)

type row struct {
	Name   string
	Amount float64
	Status string
}

var rows = []row{
	{"John Doe", 2500, "Paid"},
	{"Jane Smith", 1800, "Pending"},
	{"Ahmed Ali", 3200, "Expired"},
	{"Sarah Johnson", 950, "Cancelled"},
	{"Michael Brown", 2100, "Paid"},
	{"Lisa Anderson", 1500, "Pending"},
}

func rowFields(r row) []Field {
	return []Field{
		Text("name", r.Name),
		Num("amount", r.Amount),
		Text("status", r.Status),
	}
}

func names(items []row) []string {
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = r.Name
	}
	return out
}

func TestApplyFilter(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty search keeps all", "", []string{"John Doe", "Jane Smith", "Ahmed Ali", "Sarah Johnson", "Michael Brown"}},
		{"status match", "paid", []string{"John Doe", "Michael Brown"}},
		{"case insensitive name", "SARAH", []string{"Sarah Johnson"}},
		{"numeric text match", "2500", []string{"John Doe"}},
		{"substring across names", "an", []string{"Jane Smith", "Sarah Johnson", "Lisa Anderson"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(rows, Query{Search: tt.search, PageSize: 5}, rowFields)
			if !reflect.DeepEqual(names(got.Items), tt.want) {
				t.Errorf("filter %q = %v, want %v", tt.search, names(got.Items), tt.want)
			}
		})
	}
}

func TestApplySortNumeric(t *testing.T) {
	asc := Apply(rows, Query{SortKey: "amount", PageSize: 10}, rowFields)
	wantAsc := []string{"Sarah Johnson", "Lisa Anderson", "Jane Smith", "Michael Brown", "John Doe", "Ahmed Ali"}
	if !reflect.DeepEqual(names(asc.Items), wantAsc) {
		t.Errorf("ascending = %v, want %v", names(asc.Items), wantAsc)
	}

	desc := Apply(rows, Query{SortKey: "amount", Desc: true, PageSize: 10}, rowFields)
	wantDesc := []string{"Ahmed Ali", "John Doe", "Michael Brown", "Jane Smith", "Lisa Anderson", "Sarah Johnson"}
	if !reflect.DeepEqual(names(desc.Items), wantDesc) {
		t.Errorf("descending = %v, want %v", names(desc.Items), wantDesc)
	}
}

func TestApplySortStable(t *testing.T) {
	// Equal sort keys keep insertion order, in both directions.
	got := Apply(rows, Query{SortKey: "status", PageSize: 10}, rowFields)
	want := []string{"Sarah Johnson", "Ahmed Ali", "John Doe", "Michael Brown", "Jane Smith", "Lisa Anderson"}
	if !reflect.DeepEqual(names(got.Items), want) {
		t.Errorf("stable sort = %v, want %v", names(got.Items), want)
	}

	// Sorting twice yields the same order.
	again := Apply(got.Items, Query{SortKey: "status", PageSize: 10}, rowFields)
	if !reflect.DeepEqual(names(again.Items), want) {
		t.Errorf("sort not idempotent: %v", names(again.Items))
	}

	// Descending reverses the groups but not the order within them.
	desc := Apply(rows, Query{SortKey: "status", Desc: true, PageSize: 10}, rowFields)
	wantDesc := []string{"Jane Smith", "Lisa Anderson", "John Doe", "Michael Brown", "Ahmed Ali", "Sarah Johnson"}
	if !reflect.DeepEqual(names(desc.Items), wantDesc) {
		t.Errorf("descending stable sort = %v, want %v", names(desc.Items), wantDesc)
	}
}

func TestApplyUnknownSortKeyKeepsOrder(t *testing.T) {
	got := Apply(rows, Query{SortKey: "nope", PageSize: 10}, rowFields)
	if !reflect.DeepEqual(names(got.Items), names(rows)) {
		t.Errorf("unknown key reordered: %v", names(got.Items))
	}
}

func TestApplyPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		wantPage   int
		wantNames  []string
		totalPages int
	}{
		{"first page", 1, 1, []string{"John Doe", "Jane Smith", "Ahmed Ali", "Sarah Johnson", "Michael Brown"}, 2},
		{"second page", 2, 2, []string{"Lisa Anderson"}, 2},
		{"zero clamps to first", 0, 1, []string{"John Doe", "Jane Smith", "Ahmed Ali", "Sarah Johnson", "Michael Brown"}, 2},
		{"past end clamps to last", 99, 2, []string{"Lisa Anderson"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(rows, Query{Page: tt.page, PageSize: 5}, rowFields)
			if got.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.TotalPages != tt.totalPages {
				t.Errorf("total pages = %d, want %d", got.TotalPages, tt.totalPages)
			}
			if got.Total != len(rows) {
				t.Errorf("total = %d, want %d", got.Total, len(rows))
			}
			if !reflect.DeepEqual(names(got.Items), tt.wantNames) {
				t.Errorf("items = %v, want %v", names(got.Items), tt.wantNames)
			}
		})
	}
}

func TestApplyPagesReconstructFilteredSet(t *testing.T) {
	q := Query{Search: "pending", SortKey: "amount", PageSize: 1}

	var all []string
	first := Apply(rows, q, rowFields)
	for page := 1; page <= first.TotalPages; page++ {
		q.Page = page
		res := Apply(rows, q, rowFields)
		all = append(all, names(res.Items)...)
	}

	want := []string{"Lisa Anderson", "Jane Smith"}
	if !reflect.DeepEqual(all, want) {
		t.Errorf("pages = %v, want %v", all, want)
	}
}

func TestApplyEmptyCollection(t *testing.T) {
	got := Apply(nil, Query{Search: "x", Page: 3}, rowFields)
	if got.Total != 0 || got.TotalPages != 0 || len(got.Items) != 0 {
		t.Errorf("empty collection = %+v", got)
	}
}

func TestApplyDefaultPageSize(t *testing.T) {
	got := Apply(rows, Query{}, rowFields)
	if got.PageSize != DefaultPageSize {
		t.Errorf("page size = %d, want %d", got.PageSize, DefaultPageSize)
	}
	if len(got.Items) != DefaultPageSize {
		t.Errorf("items = %d, want %d", len(got.Items), DefaultPageSize)
	}
}
