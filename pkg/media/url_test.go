package media

import "testing"

func TestDerivedURL_Defaults(t *testing.T) {
	b := NewURLBuilder("https://res.cloudinary.com/", "demo")

	got := b.DerivedURL("teachers/ana_x1")
	want := "https://res.cloudinary.com/demo/image/upload/q_auto:good,f_auto/teachers/ana_x1"
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestDerivedURL_OverridesKeepPositionAndAppendNewKeys(t *testing.T) {
	b := NewURLBuilder("https://res.cloudinary.com", "demo")

	got := b.DerivedURL("gallery/lab1",
		Param{"c", "fill"},
		Param{"f", "webp"},
		Param{"w", "400"},
	)
	want := "https://res.cloudinary.com/demo/image/upload/q_auto:good,f_webp,c_fill,w_400/gallery/lab1"
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestDerivedURL_Stable(t *testing.T) {
	b := NewURLBuilder("https://res.cloudinary.com", "demo")
	p := []Param{{"w", "100"}, {"h", "50"}}

	if b.DerivedURL("x", p...) != b.DerivedURL("x", p...) {
		t.Error("same inputs must give the same URL")
	}
}

func TestDerivedURL_EmptyStorageID(t *testing.T) {
	b := NewURLBuilder("https://res.cloudinary.com", "demo")
	if got := b.DerivedURL(""); got != "" {
		t.Errorf("expected empty url, got %s", got)
	}
}

func TestPreviewURL(t *testing.T) {
	b := NewURLBuilder("https://res.cloudinary.com", "demo")

	got := b.PreviewURL("settings/resolucion")
	want := "https://res.cloudinary.com/demo/image/upload/pg_1,f_jpg,q_auto:good/settings/resolucion"
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}

	got = b.PreviewURL("settings/resolucion", Param{"pg", "2"})
	want = "https://res.cloudinary.com/demo/image/upload/pg_2,f_jpg,q_auto:good/settings/resolucion"
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}
