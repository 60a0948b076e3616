package monkey

import "github.com/sahilchouksey/todo-monkeys/model"

// referenceMonkeys is the built-in monkey table, in display order
var referenceMonkeys = []model.Monkey{
	{
		Name:       "Baboon",
		Location:   "Africa & Asia",
		Details:    "Baboons are African and Arabian Old World monkeys belonging to the genus Papio, part of the subfamily Cercopithecinae.",
		Image:      "monkeys/baboon.jpg",
		Population: 10000,
		Latitude:   -8.783195,
		Longitude:  34.508523,
	},
	{
		Name:       "Capuchin Monkey",
		Location:   "Central & South America",
		Details:    "The capuchin monkeys are New World monkeys of the subfamily Cebinae.",
		Image:      "monkeys/capuchin.jpg",
		Population: 23000,
		Latitude:   12.769013,
		Longitude:  -85.602364,
	},
	{
		Name:       "Blue Monkey",
		Location:   "Central and East Africa",
		Details:    "The blue monkey or diademed monkey is a species of Old World monkey native to Central and East Africa.",
		Image:      "monkeys/bluemonkey.jpg",
		Population: 12000,
		Latitude:   1.957709,
		Longitude:  37.297204,
	},
	{
		Name:       "Squirrel Monkey",
		Location:   "Central & South America",
		Details:    "The squirrel monkeys are the New World monkeys of the genus Saimiri, the only genus in the subfamily Saimirinae.",
		Image:      "monkeys/squirrelmonkey.jpg",
		Population: 11000,
		Latitude:   -8.783195,
		Longitude:  -55.491477,
	},
	{
		Name:       "Golden Lion Tamarin",
		Location:   "Brazil",
		Details:    "The golden lion tamarin, also known as the golden marmoset, is a small New World monkey of the family Callitrichidae.",
		Image:      "monkeys/tamarin.jpg",
		Population: 19000,
		Latitude:   -14.235004,
		Longitude:  -51.92528,
	},
	{
		Name:       "Howler Monkey",
		Location:   "South America",
		Details:    "Howler monkeys are among the largest of the New World monkeys and are now placed in the family Atelidae.",
		Image:      "monkeys/howler.jpg",
		Population: 8000,
		Latitude:   -8.783195,
		Longitude:  -55.491477,
	},
	{
		Name:       "Japanese Macaque",
		Location:   "Japan",
		Details:    "The Japanese macaque is a terrestrial Old World monkey native to Japan, also known as the snow monkey.",
		Image:      "monkeys/macasa.jpg",
		Population: 1000,
		Latitude:   36.204824,
		Longitude:  138.252924,
	},
	{
		Name:       "Mandrill",
		Location:   "Southern Cameroon, Gabon, and Congo",
		Details:    "The mandrill is a primate of the Old World monkey family, closely related to the baboons and even more closely to the drill.",
		Image:      "monkeys/mandrill.jpg",
		Population: 17000,
		Latitude:   7.369722,
		Longitude:  12.354722,
	},
	{
		Name:       "Proboscis Monkey",
		Location:   "Borneo",
		Details:    "The proboscis monkey or long-nosed monkey is a reddish-brown arboreal Old World monkey endemic to Borneo.",
		Image:      "monkeys/borneo.jpg",
		Population: 15000,
		Latitude:   0.961883,
		Longitude:  114.55485,
	},
	{
		Name:       "Red-shanked douc",
		Location:   "Vietnam",
		Details:    "The red-shanked douc is a species of Old World monkey, among the most colourful of all primates.",
		Image:      "monkeys/douc.jpg",
		Population: 1300,
		Latitude:   16.111648,
		Longitude:  108.262122,
	},
	{
		Name:       "Gray-shanked douc",
		Location:   "Vietnam",
		Details:    "The gray-shanked douc langur is a douc species native to the central Vietnamese highlands.",
		Image:      "monkeys/graydouc.jpg",
		Population: 750,
		Latitude:   15.570104,
		Longitude:  108.474629,
	},
	{
		Name:       "Golden Snub-nosed Monkey",
		Location:   "China",
		Details:    "The golden snub-nosed monkey is an Old World monkey in the Colobinae subfamily, endemic to the mountain forests of central and southwest China.",
		Image:      "monkeys/goldensnub.jpg",
		Population: 8000,
		Latitude:   31.84,
		Longitude:  107.70,
	},
	{
		Name:       "Black Snub-nosed Monkey",
		Location:   "China",
		Details:    "The black snub-nosed monkey, also known as the Yunnan snub-nosed monkey, is an endangered primate endemic to China.",
		Image:      "monkeys/blacksnub.jpg",
		Population: 2500,
		Latitude:   26.25,
		Longitude:  99.12,
	},
	{
		Name:       "Tonkin Snub-nosed Monkey",
		Location:   "Vietnam",
		Details:    "The Tonkin snub-nosed monkey is a slender-bodied arboreal Old World monkey endemic to northern Vietnam.",
		Image:      "monkeys/tonkin.jpg",
		Population: 250,
		Latitude:   22.33,
		Longitude:  104.84,
	},
	{
		Name:       "Thomas's Langur",
		Location:   "Indonesia",
		Details:    "Thomas's langur is a primate of the family Cercopithecidae endemic to North Sumatra.",
		Image:      "monkeys/langur.jpg",
		Population: 10000,
		Latitude:   2.50,
		Longitude:  98.00,
	},
	{
		Name:       "Purple-faced langur",
		Location:   "Sri Lanka",
		Details:    "The purple-faced langur, also known as the purple-faced leaf monkey, is an Old World monkey endemic to Sri Lanka.",
		Image:      "monkeys/purpleface.jpg",
		Population: 1500,
		Latitude:   7.873054,
		Longitude:  80.771797,
	},
	{
		Name:       "Gelada",
		Location:   "Ethiopia",
		Details:    "The gelada, sometimes called the bleeding-heart monkey, is an Old World monkey found only in the Ethiopian Highlands.",
		Image:      "monkeys/gelada.jpg",
		Population: 200000,
		Latitude:   11.35,
		Longitude:  38.20,
	},
}
