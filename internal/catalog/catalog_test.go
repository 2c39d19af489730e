package catalog

import "testing"

func TestTranslate_KnownTokens(t *testing.T) {
	cases := map[string]string{
		"เสื้อ":   "Shirts",
		"กระเป๋า": "Tote Bag",
		"ถุงเท้า": "Socks",
		"กางเกง":  "Pants",
		"หมวก":    "Hats",
		"รองเท้า": "Shoe",
	}
	for token, want := range cases {
		got, ok := Translate(token)
		if !ok || got != want {
			t.Errorf("Translate(%q) = %q, %v; want %q, true", token, got, ok, want)
		}
	}
}

func TestTranslate_UnknownToken(t *testing.T) {
	if got, ok := Translate("Shirts"); ok {
		t.Fatalf("Translate of canonical name should miss, got %q", got)
	}
	if _, ok := Translate("xyz"); ok {
		t.Fatal("unknown token should miss")
	}
}

func TestMenuTrigger_CaseInsensitive(t *testing.T) {
	for _, s := range []string{"menu", "MENU", "Main", "เมนู", "Quick Reply"} {
		if !IsMenuTrigger(s) {
			t.Errorf("IsMenuTrigger(%q) = false", s)
		}
	}
	if IsMenuTrigger("menus") {
		t.Error("partial word should not trigger menu")
	}
}

func TestRecommendTrigger(t *testing.T) {
	for _, s := range []string{"แนะนำ", "ขอคำแนะนำ", "Recommend", "BEST SELLING"} {
		if !IsRecommendTrigger(s) {
			t.Errorf("IsRecommendTrigger(%q) = false", s)
		}
	}
}

func TestSubMenu(t *testing.T) {
	m, ok := SubMenu("Shoe")
	if !ok || len(m.Options) != 10 {
		t.Fatalf("Shoe submenu: ok=%v options=%d", ok, len(m.Options))
	}
	m, ok = SubMenu("General")
	if !ok || m.Prompt != FaqListText || len(m.Options) != 5 {
		t.Fatalf("General submenu should be the FAQ menu, got %+v", m)
	}
	if _, ok := SubMenu("Sale!!"); ok {
		t.Fatal("Sale!! is not a submenu label")
	}
}

func TestIsFaqIndex(t *testing.T) {
	for _, s := range []string{"1", "2", "3", "4"} {
		if !IsFaqIndex(s) {
			t.Errorf("IsFaqIndex(%q) = false", s)
		}
	}
	for _, s := range []string{"0", "5", "11", ""} {
		if IsFaqIndex(s) {
			t.Errorf("IsFaqIndex(%q) = true", s)
		}
	}
}

func TestMainMenuOptions(t *testing.T) {
	want := []string{"Shoe", "Collection", "Product", "Sale!!", "General"}
	if len(MainMenuOptions) != len(want) {
		t.Fatalf("main menu has %d options, want %d", len(MainMenuOptions), len(want))
	}
	for i, o := range MainMenuOptions {
		if o.Label != want[i] || o.Text != want[i] {
			t.Errorf("option %d = %+v, want %q", i, o, want[i])
		}
	}
}
