package scoring

import (
	"reflect"
	"sort"
	"testing"

	"github.com/ngmaloney/preflight-terminal/internal/models"
)

func category(t *testing.T, name string) Category {
	t.Helper()
	for _, c := range Categories() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("category %q not found", name)
	return Category{}
}

// experiencedPilot triggers nothing against calmFlight
func experiencedPilot() models.PilotProfile {
	return models.PilotProfile{
		FullName:        "Chuck Yeager",
		Certificate:     models.CertificateCPL,
		TotalHours:      500,
		Hours90:         20,
		TypicalAircraft: "PA-28",
		Mins: models.Minimums{
			MaxCrosswind:  15,
			MinCeiling:    1000,
			MinVisibility: 3,
			MaxGustSpread: 10,
		},
		Currency: models.Currency{NightPassengerCurrent: true, LastFlightDaysAgo: 5},
	}
}

func calmFlight() models.FlightInput {
	return models.FlightInput{
		Departure:   "KCGF",
		Destination: "KAKR",
		WindCross:   5,
		Ceiling:     5000,
		Visibility:  10,
		GustSpread:  2,
	}
}

func TestCrosswindTiers(t *testing.T) {
	c := category(t, "crosswind")
	p := models.DefaultProfile() // max 10

	tests := []struct {
		cross      float64
		wantPoints int // 0 means nothing fires
	}{
		{11, 3},
		{10, 2},
		{7, 2},
		{6, 1},
		{5, 1},
		{4, 0},
		{0, 0},
	}

	for _, tt := range tests {
		f := models.FlightInput{WindCross: tt.cross}
		r, ok := c.Evaluate(p, f)
		got := 0
		if ok {
			got = r.Points
		}
		if got != tt.wantPoints {
			t.Errorf("crosswind %v against max 10: points = %d, want %d", tt.cross, got, tt.wantPoints)
		}
	}
}

func TestCrosswindTiers_SmallMaxFloorsAtZero(t *testing.T) {
	c := category(t, "crosswind")
	p := models.DefaultProfile()
	p.Mins.MaxCrosswind = 2

	r, ok := c.Evaluate(p, models.FlightInput{WindCross: 0})
	if !ok || r.Points != 2 {
		t.Errorf("calm wind with max 2: got %+v (fired=%v), want the 2 point tier", r, ok)
	}
	if r.Rule != "Crosswind near your max" {
		t.Errorf("rule = %q", r.Rule)
	}
}

func TestCeilingTiers(t *testing.T) {
	c := category(t, "ceiling")
	p := models.DefaultProfile() // min 2000

	tests := []struct {
		ceiling    float64
		wantPoints int
	}{
		{1999, 3},
		{2000, 2},
		{2500, 2},
		{2501, 1},
		{3000, 1},
		{3001, 0},
	}

	for _, tt := range tests {
		r, ok := c.Evaluate(p, models.FlightInput{Ceiling: tt.ceiling})
		got := 0
		if ok {
			got = r.Points
		}
		if got != tt.wantPoints {
			t.Errorf("ceiling %v against min 2000: points = %d, want %d", tt.ceiling, got, tt.wantPoints)
		}
	}
}

func TestVisibilityTiers(t *testing.T) {
	c := category(t, "visibility")
	p := models.DefaultProfile() // min 5

	tests := []struct {
		vis        float64
		wantPoints int
	}{
		{4.9, 3},
		{5, 2},
		{6, 2},
		{6.5, 1},
		{7, 1},
		{7.5, 0},
	}

	for _, tt := range tests {
		r, ok := c.Evaluate(p, models.FlightInput{Visibility: tt.vis})
		got := 0
		if ok {
			got = r.Points
		}
		if got != tt.wantPoints {
			t.Errorf("visibility %v against min 5: points = %d, want %d", tt.vis, got, tt.wantPoints)
		}
	}
}

func TestGustSpreadTiers(t *testing.T) {
	c := category(t, "gust spread")

	tests := []struct {
		name       string
		max        float64
		gust       float64
		wantPoints int
	}{
		{"above max", 8, 9, 2},
		{"at max", 8, 8, 1},
		{"two below max", 8, 6, 1},
		{"well below max", 8, 5, 0},
		{"small max floors at zero", 1, 0, 1},
		{"zero max, zero gust", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.DefaultProfile()
			p.Mins.MaxGustSpread = tt.max
			r, ok := c.Evaluate(p, models.FlightInput{GustSpread: tt.gust})
			got := 0
			if ok {
				got = r.Points
			}
			if got != tt.wantPoints {
				t.Errorf("points = %d, want %d", got, tt.wantPoints)
			}
		})
	}
}

func TestNightCurrency(t *testing.T) {
	c := category(t, "night currency")

	tests := []struct {
		name    string
		night   bool
		current bool
		want    bool
	}{
		{"night, not current", true, false, true},
		{"night, current", true, true, false},
		{"day, not current", false, false, false},
		{"day, current", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.DefaultProfile()
			p.Currency.NightPassengerCurrent = tt.current
			r, ok := c.Evaluate(p, models.FlightInput{IsNight: tt.night})
			if ok != tt.want {
				t.Fatalf("fired = %v, want %v", ok, tt.want)
			}
			if ok && r.Points != 3 {
				t.Errorf("points = %d, want 3", r.Points)
			}
		})
	}
}

func TestRecencyTiers(t *testing.T) {
	c := category(t, "recency")

	tests := []struct {
		days       int
		wantPoints int
		wantNote   string
	}{
		{90, 2, "Last flight 90 days ago."},
		{60, 2, "Last flight 60 days ago."},
		{59, 1, "Last flight 59 days ago."},
		{30, 1, "Last flight 30 days ago."},
		{29, 0, ""},
	}

	for _, tt := range tests {
		p := models.DefaultProfile()
		p.Currency.LastFlightDaysAgo = tt.days
		r, ok := c.Evaluate(p, models.FlightInput{})
		got := 0
		if ok {
			got = r.Points
		}
		if got != tt.wantPoints || r.Note != tt.wantNote {
			t.Errorf("%d days: got (%d, %q), want (%d, %q)", tt.days, got, r.Note, tt.wantPoints, tt.wantNote)
		}
	}
}

func TestExperienceRules(t *testing.T) {
	total := category(t, "total experience")
	recent := category(t, "recent experience")

	p := models.DefaultProfile()
	p.TotalHours = 99.5
	p.Hours90 = 9
	if r, ok := total.Evaluate(p, models.FlightInput{}); !ok || r.Note != "Total time 99.5h. I add a little buffer for newer pilots." {
		t.Errorf("total experience: got %+v, fired=%v", r, ok)
	}
	if r, ok := recent.Evaluate(p, models.FlightInput{}); !ok || r.Note != "Only 9h in the last 90 days." {
		t.Errorf("recent experience: got %+v, fired=%v", r, ok)
	}

	p.TotalHours = 100
	p.Hours90 = 10
	if _, ok := total.Evaluate(p, models.FlightInput{}); ok {
		t.Error("100 total hours should not fire")
	}
	if _, ok := recent.Evaluate(p, models.FlightInput{}); ok {
		t.Error("10 recent hours should not fire")
	}
}

func TestDecide_NothingTriggered(t *testing.T) {
	d := Decide(experiencedPilot(), calmFlight())

	if d.Status != models.StatusGo {
		t.Errorf("Status = %v, want GO", d.Status)
	}
	if d.Score != 0 {
		t.Errorf("Score = %d, want 0", d.Score)
	}
	if d.TitleLine != "Chuck, I like this one." {
		t.Errorf("TitleLine = %q", d.TitleLine)
	}
	if len(d.Bullets) != 1 || d.Bullets[0] != fallbackBullet {
		t.Errorf("Bullets = %v, want the fallback message", d.Bullets)
	}
	if len(d.Tech.RulesTriggered) != 0 {
		t.Errorf("RulesTriggered = %v, want none", d.Tech.RulesTriggered)
	}
}

func TestDecide_DefaultsAreCaution(t *testing.T) {
	d := Decide(models.DefaultProfile(), models.DefaultFlight())

	if d.Score != 3 || d.Status != models.StatusCaution {
		t.Fatalf("got score %d status %v, want 3 CAUTION", d.Score, d.Status)
	}
	if d.TitleLine != "Friend, this one’s flyable, but it’s pushing your usual comfort zone." {
		t.Errorf("TitleLine = %q", d.TitleLine)
	}

	want := []string{
		"Crosswind 6kt is getting sporty for your limit 10kt.",
		"Total time 80h. I add a little buffer for newer pilots.",
		"Only 6h in the last 90 days.",
	}
	if !reflect.DeepEqual(d.Bullets, want) {
		t.Errorf("Bullets = %v, want %v", d.Bullets, want)
	}
}

func TestDecide_NoGoTruncatesBullets(t *testing.T) {
	p := models.DefaultProfile()
	p.FullName = "Jason Denisyuk"
	p.Nickname = " Captain J "
	p.TotalHours = 50
	p.Hours90 = 2
	p.Currency = models.Currency{NightPassengerCurrent: false, LastFlightDaysAgo: 90}

	f := models.FlightInput{
		Departure:   " kcgf ",
		Destination: "k-akr!",
		IsNight:     true,
		WindCross:   12,
		Ceiling:     1500,
		Visibility:  3,
		GustSpread:  9,
	}

	d := Decide(p, f)

	if d.Status != models.StatusNoGo {
		t.Errorf("Status = %v, want NO-GO", d.Status)
	}
	if d.Score != 18 {
		t.Errorf("Score = %d, want 18", d.Score)
	}
	if d.TitleLine != "Captain J, I’d call this a no-go based on your limits." {
		t.Errorf("TitleLine = %q", d.TitleLine)
	}

	wantBullets := []string{
		"Crosswind 12kt > your max 10kt.",
		"Ceiling 1500ft < your min 2000ft.",
		"Visibility 3sm < your min 5sm.",
		"You marked that you're not night-passenger current.",
		"Gust spread 9kt > your max 8kt.",
		"Last flight 90 days ago.",
	}
	if !reflect.DeepEqual(d.Bullets, wantBullets) {
		t.Errorf("Bullets =\n%v\nwant\n%v", d.Bullets, wantBullets)
	}

	wantRules := []string{
		"Crosswind above your max",
		"Ceiling below your min",
		"Visibility below your min",
		"Not night-passenger current",
		"Gust spread above your max",
		"Long time since last flight",
		"Low total time (extra buffer)",
		"Low recent time",
	}
	var gotRules []string
	for _, r := range d.Tech.RulesTriggered {
		gotRules = append(gotRules, r.Rule)
	}
	if !reflect.DeepEqual(gotRules, wantRules) {
		t.Errorf("RulesTriggered = %v, want most severe first %v", gotRules, wantRules)
	}

	if d.Tech.Inputs.Departure != "KCGF" || d.Tech.Inputs.Destination != "KAKR" {
		t.Errorf("audit route = %q -> %q, want KCGF -> KAKR", d.Tech.Inputs.Departure, d.Tech.Inputs.Destination)
	}
	if d.Tech.Profile != p {
		t.Error("audit profile differs from the input profile")
	}
}

func TestDecide_AuditListsMostSevereFirst(t *testing.T) {
	p := models.DefaultProfile()
	f := models.DefaultFlight()
	f.Ceiling = 1500

	d := Decide(p, f)

	want := []models.TriggeredRule{
		{Rule: "Ceiling below your min", Points: 3, Note: "Ceiling 1500ft < your min 2000ft."},
		{Rule: "Crosswind worth a second look", Points: 1},
		{Rule: "Low total time (extra buffer)", Points: 1},
		{Rule: "Low recent time", Points: 1},
	}
	if len(d.Tech.RulesTriggered) != len(want) {
		t.Fatalf("RulesTriggered = %+v, want %d rules", d.Tech.RulesTriggered, len(want))
	}
	for i, r := range d.Tech.RulesTriggered {
		if r.Rule != want[i].Rule || r.Points != want[i].Points {
			t.Errorf("rule %d = %s (+%d), want %s (+%d)", i, r.Rule, r.Points, want[i].Rule, want[i].Points)
		}
	}
	if got := d.Tech.RulesTriggered[0].Note; got != want[0].Note {
		t.Errorf("first note = %q, want %q", got, want[0].Note)
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	p := models.DefaultProfile()
	f := models.DefaultFlight()
	before := Decide(p, f)

	cats := Categories()
	for i := range cats {
		cats[i] = Category{Name: "mutated"}
	}

	after := Decide(p, f)
	if after.Score != before.Score || !reflect.DeepEqual(after.Tech.RulesTriggered, before.Tech.RulesTriggered) {
		t.Errorf("Decide changed after mutating Categories(): score %d -> %d", before.Score, after.Score)
	}
	if Categories()[0].Name != "crosswind" {
		t.Errorf("Categories()[0].Name = %q, want crosswind", Categories()[0].Name)
	}
}

func TestDecide_Idempotent(t *testing.T) {
	p := models.DefaultProfile()
	p.FullName = "Amelia Earhart"
	f := models.DefaultFlight()
	f.IsNight = true

	first := Decide(p, f)
	second := Decide(p, f)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Decide() not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestDecide_Invariants(t *testing.T) {
	p := models.DefaultProfile()

	for _, cross := range []float64{0, 5, 7, 11} {
		for _, ceiling := range []float64{500, 2000, 2800, 9000} {
			for _, vis := range []float64{1, 5.5, 7, 10} {
				for _, gust := range []float64{0, 6, 12} {
					for _, night := range []bool{false, true} {
						for _, days := range []int{0, 45, 120} {
							p.Currency.NightPassengerCurrent = days < 100
							p.Currency.LastFlightDaysAgo = days
							f := models.FlightInput{WindCross: cross, Ceiling: ceiling, Visibility: vis, GustSpread: gust, IsNight: night}
							checkInvariants(t, Decide(p, f))
						}
					}
				}
			}
		}
	}
}

func checkInvariants(t *testing.T, d models.Decision) {
	t.Helper()

	sum := 0
	for _, r := range d.Tech.RulesTriggered {
		sum += r.Points
	}
	if d.Score != sum {
		t.Fatalf("score %d != sum of triggered points %d", d.Score, sum)
	}

	if d.Status != StatusForScore(d.Score) {
		t.Fatalf("status %v does not match score %d", d.Status, d.Score)
	}

	if len(d.Bullets) == 0 || len(d.Bullets) > maxBullets {
		t.Fatalf("bullets length %d out of range", len(d.Bullets))
	}

	rules := d.Tech.RulesTriggered
	if len(rules) == 0 {
		return
	}
	if !sort.SliceIsSorted(rules, func(i, j int) bool { return rules[i].Points > rules[j].Points }) {
		t.Fatalf("triggered rules not ordered by points: %+v", rules)
	}
	for i, b := range d.Bullets {
		if rules[i].Note != b {
			t.Fatalf("bullet %d = %q, want %q", i, b, rules[i].Note)
		}
	}
}

func TestStatusForScore(t *testing.T) {
	tests := []struct {
		score int
		want  models.Status
	}{
		{0, models.StatusGo},
		{2, models.StatusGo},
		{3, models.StatusCaution},
		{5, models.StatusCaution},
		{6, models.StatusNoGo},
		{21, models.StatusNoGo},
	}

	for _, tt := range tests {
		if got := StatusForScore(tt.score); got != tt.want {
			t.Errorf("StatusForScore(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"KCGF", "KCGF"},
		{" kcgf ", "KCGF"},
		{"k-cgf!", "KCGF"},
		{"abcdefghij", "ABCDEF"},
		{"  12@3 ", "123"},
		{"é", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeIdentifier(tt.input); got != tt.want {
				t.Errorf("NormalizeIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
