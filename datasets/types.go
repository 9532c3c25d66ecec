package datasets

// ============================================================================
// RECORD TYPES
// ============================================================================
// One struct per record shape. Field tags follow the fixture files; json tags
// keep the same names in encoded query output.
// ============================================================================

// ── Single datasets ──────────────────────────────────────────────────────────

type Kitty struct {
	Name  string `yaml:"name" json:"name"`
	Age   int    `yaml:"age" json:"age"`
	Color string `yaml:"color" json:"color"`
}

type Club struct {
	Club    string   `yaml:"club" json:"club"`
	Members []string `yaml:"members" json:"members"`
}

// Mod is one Turing module with its head counts.
type Mod struct {
	Mod         int `yaml:"mod" json:"mod"`
	Students    int `yaml:"students" json:"students"`
	Instructors int `yaml:"instructors" json:"instructors"`
}

type Cake struct {
	CakeFlavor string   `yaml:"cakeFlavor" json:"cakeFlavor"`
	Filling    *string  `yaml:"filling" json:"filling"`
	Frosting   string   `yaml:"frosting" json:"frosting"`
	Toppings   []string `yaml:"toppings" json:"toppings"`
	InStock    int      `yaml:"inStock" json:"inStock"`
}

type Classroom struct {
	RoomLetter string `yaml:"roomLetter" json:"roomLetter"`
	Program    string `yaml:"program" json:"program"`
	Capacity   int    `yaml:"capacity" json:"capacity"`
}

type Book struct {
	Title     string `yaml:"title" json:"title"`
	Author    string `yaml:"author" json:"author"`
	Genre     string `yaml:"genre" json:"genre"`
	Published int    `yaml:"published" json:"published"`
}

type Temperature struct {
	High float64 `yaml:"high" json:"high"`
	Low  float64 `yaml:"low" json:"low"`
}

type Weather struct {
	Location    string      `yaml:"location" json:"location"`
	Type        string      `yaml:"type" json:"type"`
	Humidity    int         `yaml:"humidity" json:"humidity"`
	Temperature Temperature `yaml:"temperature" json:"temperature"`
}

type Park struct {
	Name       string   `yaml:"name" json:"name"`
	Location   string   `yaml:"location" json:"location"`
	Visited    bool     `yaml:"visited" json:"visited"`
	Activities []string `yaml:"activities" json:"activities"`
}

type Beer struct {
	Name string  `yaml:"name" json:"name"`
	Type string  `yaml:"type" json:"type"`
	ABV  float64 `yaml:"abv" json:"abv"`
	IBU  int     `yaml:"ibu" json:"ibu"`
}

type Brewery struct {
	Name    string `yaml:"name" json:"name"`
	Address string `yaml:"address" json:"address"`
	Beers   []Beer `yaml:"beers" json:"beers"`
}

// ── Double datasets ──────────────────────────────────────────────────────────

type Instructor struct {
	Name    string   `yaml:"name" json:"name"`
	Module  int      `yaml:"module" json:"module"`
	Teaches []string `yaml:"teaches" json:"teaches"`
}

type Cohort struct {
	Cohort       int      `yaml:"cohort" json:"cohort"`
	Module       int      `yaml:"module" json:"module"`
	StudentCount int      `yaml:"studentCount" json:"studentCount"`
	Curriculum   []string `yaml:"curriculum" json:"curriculum"`
}

type Boss struct {
	Name      string   `yaml:"name" json:"name"`
	Sidekicks []string `yaml:"sidekicks" json:"sidekicks"`
}

type Sidekick struct {
	Name          string `yaml:"name" json:"name"`
	Boss          string `yaml:"boss" json:"boss"`
	LoyaltyToBoss int    `yaml:"loyaltyToBoss" json:"loyaltyToBoss"`
}

type Constellation struct {
	Key              string   `yaml:"key" json:"key"`
	Names            []string `yaml:"names" json:"names"`
	Stars            []string `yaml:"stars" json:"stars"`
	BestViewingMonth string   `yaml:"bestViewingMonth" json:"bestViewingMonth"`
}

// Star.Constellation is empty for stars outside every listed constellation.
type Star struct {
	Name                string  `yaml:"name" json:"name"`
	VisualMagnitude     float64 `yaml:"visualMagnitude" json:"visualMagnitude"`
	Constellation       string  `yaml:"constellation" json:"constellation"`
	LightYearsFromEarth float64 `yaml:"lightYearsFromEarth" json:"lightYearsFromEarth"`
	Color               string  `yaml:"color" json:"color"`
}

type Weapon struct {
	Name   string `yaml:"name" json:"name"`
	Damage int    `yaml:"damage" json:"damage"`
	Range  int    `yaml:"range" json:"range"`
}

type Character struct {
	Name    string   `yaml:"name" json:"name"`
	Weapons []string `yaml:"weapons" json:"weapons"`
}

type Dinosaur struct {
	Name      string `yaml:"name" json:"name"`
	Carnivore bool   `yaml:"carnivore" json:"carnivore"`
	IsAwesome bool   `yaml:"isAwesome" json:"isAwesome"`
}

type Human struct {
	Name                string `yaml:"name" json:"name"`
	YearBorn            int    `yaml:"yearBorn" json:"yearBorn"`
	Nationality         string `yaml:"nationality" json:"nationality"`
	IMDBStarMeterRating int    `yaml:"imdbStarMeterRating" json:"imdbStarMeterRating"`
}

type Movie struct {
	Title          string   `yaml:"title" json:"title"`
	Director       string   `yaml:"director" json:"director"`
	LeadCharacters []string `yaml:"leadCharacters" json:"leadCharacters"`
	Cast           []string `yaml:"cast" json:"cast"`
	Dinos          []string `yaml:"dinos" json:"dinos"`
	YearReleased   int      `yaml:"yearReleased" json:"yearReleased"`
}
