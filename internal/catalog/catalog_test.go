package catalog

import (
	"testing"
)

func TestDBList(t *testing.T) {
	db := NewDB()

	tests := []struct {
		name  string
		skip  int
		limit int
		want  []string
	}{
		{name: "defaults cover the whole list", skip: 0, limit: 10, want: []string{"Foo", "Bar", "Baz"}},
		{name: "skip one limit one yields exactly the second element", skip: 1, limit: 1, want: []string{"Bar"}},
		{name: "skip past the end yields empty", skip: 5, limit: 10, want: []string{}},
		{name: "zero limit yields empty", skip: 0, limit: 0, want: []string{}},
		{name: "limit clamps to the end", skip: 2, limit: 10, want: []string{"Baz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := db.List(tt.skip, tt.limit)

			if got == nil {
				t.Fatal("List returned nil, want non-nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].ItemName != tt.want[i] {
					t.Errorf("item[%d] = %q, want %q", i, got[i].ItemName, tt.want[i])
				}
			}
		})
	}
}

func TestItemValidate(t *testing.T) {
	price := 35.4

	tests := []struct {
		name    string
		item    Item
		wantErr bool
	}{
		{
			name: "minimal valid item",
			item: Item{Name: "Hammer", Price: &price},
		},
		{
			name:    "missing name",
			item:    Item{Price: &price},
			wantErr: true,
		},
		{
			name:    "missing price",
			item:    Item{Name: "Hammer"},
			wantErr: true,
		},
		{
			name: "zero price is present, not missing",
			item: Item{Name: "Freebie", Price: Ptr(0.0)},
		},
		{
			name:    "duplicate tagS entries",
			item:    Item{Name: "Hammer", Price: &price, TagS: []string{"a", "a"}},
			wantErr: true,
		},
		{
			name: "ordered tagL may repeat",
			item: Item{Name: "Hammer", Price: &price, TagL: []string{"a", "a"}},
		},
		{
			name: "valid nested image",
			item: Item{Name: "Hammer", Price: &price, Image: &Image{URL: "https://example.com/h.jpg", Name: "h"}},
		},
		{
			name:    "image url must be a URL",
			item:    Item{Name: "Hammer", Price: &price, Image: &Image{URL: "not a url", Name: "h"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestItemNormalize(t *testing.T) {
	price := 1.0
	item := Item{Name: "Hammer", Price: &price}
	item.Normalize()

	if item.TagL == nil || len(item.TagL) != 0 {
		t.Errorf("TagL = %v, want empty slice", item.TagL)
	}
	if item.TagS == nil || len(item.TagS) != 0 {
		t.Errorf("TagS = %v, want empty slice", item.TagS)
	}
}

func TestItemOut(t *testing.T) {
	price := 35.4

	t.Run("tax present and non-zero", func(t *testing.T) {
		tax := 3.2
		item := Item{Name: "Hammer", Price: &price, Tax: &tax}

		out := item.Out()
		if out.PriceWithTax == nil {
			t.Fatal("price_with_tax missing")
		}
		if got := *out.PriceWithTax; got != price+tax {
			t.Errorf("price_with_tax = %v, want %v", got, price+tax)
		}
	})

	t.Run("tax absent", func(t *testing.T) {
		item := Item{Name: "Hammer", Price: &price}

		if out := item.Out(); out.PriceWithTax != nil {
			t.Errorf("price_with_tax = %v, want nil", *out.PriceWithTax)
		}
	})

	t.Run("tax zero", func(t *testing.T) {
		tax := 0.0
		item := Item{Name: "Hammer", Price: &price, Tax: &tax}

		if out := item.Out(); out.PriceWithTax != nil {
			t.Errorf("price_with_tax = %v, want nil", *out.PriceWithTax)
		}
	})
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    UserIn
		wantErr bool
	}{
		{
			name: "minimal valid user",
			user: UserIn{Username: "wendy", Password: "hunter2"},
		},
		{
			name:    "missing username",
			user:    UserIn{Password: "hunter2"},
			wantErr: true,
		},
		{
			name:    "username too long",
			user:    UserIn{Username: longString(65), Password: "hunter2"},
			wantErr: true,
		},
		{
			name: "username at the limit",
			user: UserIn{Username: longString(64), Password: "hunter2"},
		},
		{
			name: "temp_val above one",
			user: UserIn{Username: "wendy", Password: "hunter2", TempVal: Ptr(2)},
		},
		{
			name:    "temp_val must exceed one when present",
			user:    UserIn{Username: "wendy", Password: "hunter2", TempVal: Ptr(1)},
			wantErr: true,
		},
		{
			name:    "full_name too long",
			user:    UserIn{Username: "wendy", Password: "hunter2", FullName: Ptr(longString(513))},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserOutDropsPassword(t *testing.T) {
	user := UserIn{Username: "wendy", Password: "hunter2", FullName: Ptr("Wendy Doe"), TempVal: Ptr(7)}

	out := user.Out()
	if out.Username != "wendy" || *out.FullName != "Wendy Doe" || *out.TempVal != 7 {
		t.Errorf("Out() = %+v", out)
	}
}

func TestModelNameMessage(t *testing.T) {
	tests := []struct {
		model ModelName
		want  string
	}{
		{model: ModelAlexnet, want: "Deep Learning FTW!"},
		{model: ModelLenet, want: "LeCNN all the images"},
		{model: ModelResnet, want: "Have some residuals"},
	}

	for _, tt := range tests {
		t.Run(string(tt.model), func(t *testing.T) {
			if got := tt.model.Message(); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModelNames(t *testing.T) {
	names := ModelNames()
	want := []string{"alexnet", "resnet", "lenet"}

	if len(names) != len(want) {
		t.Fatalf("len = %d, want %d", len(names), len(want))
	}
	for i := range names {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

// Ptr and longString are small test fixtures.
func Ptr[T any](v T) *T { return &v }

func longString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}
