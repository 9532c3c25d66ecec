package datasets

import "github.com/spektr-org/prototypes/schema"

// Schemas lists the expected shape of every fixture file, in load order.
// The Name of each entry is the file's base name without extension.
var Schemas = []schema.Config{
	{
		Name: "kitties",
		Collections: []schema.CollectionMeta{
			schema.Collection("kitties", "Kitties",
				schema.Field("name", schema.KindString),
				schema.Field("age", schema.KindInt),
				schema.Field("color", schema.KindString)),
		},
	},
	{
		Name: "clubs",
		Collections: []schema.CollectionMeta{
			schema.Collection("clubs", "Clubs",
				schema.Field("club", schema.KindString),
				schema.List("members", schema.KindString)),
		},
	},
	{
		Name: "mods",
		Collections: []schema.CollectionMeta{
			schema.Collection("mods", "Mods",
				schema.Field("mod", schema.KindInt),
				schema.Field("students", schema.KindInt),
				schema.Field("instructors", schema.KindInt)),
		},
	},
	{
		Name: "cakes",
		Collections: []schema.CollectionMeta{
			schema.Collection("cakes", "Cakes",
				schema.Field("cakeFlavor", schema.KindString),
				schema.Field("filling", schema.KindString).OrNull(),
				schema.Field("frosting", schema.KindString),
				schema.List("toppings", schema.KindString),
				schema.Field("inStock", schema.KindInt)),
		},
	},
	{
		Name: "classrooms",
		Collections: []schema.CollectionMeta{
			schema.Collection("classrooms", "Classrooms",
				schema.Field("roomLetter", schema.KindString),
				schema.Field("program", schema.KindString),
				schema.Field("capacity", schema.KindInt)),
		},
	},
	{
		Name: "books",
		Collections: []schema.CollectionMeta{
			schema.Collection("books", "Books",
				schema.Field("title", schema.KindString),
				schema.Field("author", schema.KindString),
				schema.Field("genre", schema.KindString),
				schema.Field("published", schema.KindInt)),
		},
	},
	{
		Name: "weather",
		Collections: []schema.CollectionMeta{
			schema.Collection("weather", "Weather",
				schema.Field("location", schema.KindString),
				schema.Field("type", schema.KindString),
				schema.Field("humidity", schema.KindInt),
				schema.Object("temperature",
					schema.Field("high", schema.KindFloat),
					schema.Field("low", schema.KindFloat))),
		},
	},
	{
		Name: "nationalParks",
		Collections: []schema.CollectionMeta{
			schema.Collection("nationalParks", "National Parks",
				schema.Field("name", schema.KindString),
				schema.Field("location", schema.KindString),
				schema.Field("visited", schema.KindBool),
				schema.List("activities", schema.KindString)),
		},
	},
	{
		Name: "breweries",
		Collections: []schema.CollectionMeta{
			schema.Collection("breweries", "Breweries",
				schema.Field("name", schema.KindString),
				schema.Field("address", schema.KindString),
				schema.List("beers", schema.KindObject,
					schema.Field("name", schema.KindString),
					schema.Field("type", schema.KindString),
					schema.Field("abv", schema.KindFloat),
					schema.Field("ibu", schema.KindInt))),
		},
	},
	{
		Name: "turing",
		Collections: []schema.CollectionMeta{
			schema.Collection("instructors", "Instructors",
				schema.Field("name", schema.KindString),
				schema.Field("module", schema.KindInt),
				schema.List("teaches", schema.KindString)),
			schema.Collection("cohorts", "Cohorts",
				schema.Field("cohort", schema.KindInt),
				schema.Field("module", schema.KindInt),
				schema.Field("studentCount", schema.KindInt),
				schema.List("curriculum", schema.KindString)),
		},
	},
	{
		Name: "bosses",
		Collections: []schema.CollectionMeta{
			schema.Collection("bosses", "Bosses",
				schema.Field("name", schema.KindString),
				schema.List("sidekicks", schema.KindString)),
			schema.Collection("sidekicks", "Sidekicks",
				schema.Field("name", schema.KindString),
				schema.Field("boss", schema.KindString),
				schema.Field("loyaltyToBoss", schema.KindInt)),
		},
	},
	{
		Name: "astronomy",
		Collections: []schema.CollectionMeta{
			schema.Collection("constellations", "Constellations",
				schema.Field("key", schema.KindString),
				schema.List("names", schema.KindString),
				schema.List("stars", schema.KindString),
				schema.Field("bestViewingMonth", schema.KindString)),
			schema.Collection("stars", "Stars",
				schema.Field("name", schema.KindString),
				schema.Field("visualMagnitude", schema.KindFloat),
				schema.Field("constellation", schema.KindString),
				schema.Field("lightYearsFromEarth", schema.KindFloat),
				schema.Field("color", schema.KindString)),
		},
	},
	{
		Name: "ultima",
		Collections: []schema.CollectionMeta{
			schema.Collection("weapons", "Weapons",
				schema.Field("name", schema.KindString),
				schema.Field("damage", schema.KindInt),
				schema.Field("range", schema.KindInt)),
			schema.Collection("characters", "Characters",
				schema.Field("name", schema.KindString),
				schema.List("weapons", schema.KindString)),
		},
	},
	{
		Name: "dinosaurs",
		Collections: []schema.CollectionMeta{
			schema.Collection("dinosaurs", "Dinosaurs",
				schema.Field("name", schema.KindString),
				schema.Field("carnivore", schema.KindBool),
				schema.Field("isAwesome", schema.KindBool)),
			schema.Collection("humans", "Humans",
				schema.Field("name", schema.KindString),
				schema.Field("yearBorn", schema.KindInt),
				schema.Field("nationality", schema.KindString),
				schema.Field("imdbStarMeterRating", schema.KindInt)),
			schema.Collection("movies", "Movies",
				schema.Field("title", schema.KindString),
				schema.Field("director", schema.KindString),
				schema.List("leadCharacters", schema.KindString),
				schema.List("cast", schema.KindString),
				schema.List("dinos", schema.KindString),
				schema.Field("yearReleased", schema.KindInt)),
		},
	},
}
