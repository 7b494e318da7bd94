package catalog

// Slide is a promotional record shown on the home view.
type Slide struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ButtonText  string `json:"button_text"`
	Image       string `json:"image"`
}

var Slides = []Slide{
	{
		ID:          1,
		Title:       "African Elegance",
		Subtitle:    "Beads that tell a story",
		Description: "Discover handcrafted Maasai beaded necklaces and brass jewellery, celebrating heritage and artistry with a modern touch.",
		ButtonText:  "Explore Jewellery",
		Image:       "https://c8.alamy.com/comp/ARB0BC/maasai-necklace-detail-hand-beaded-maasi-mara-kenya-ARB0BC.jpg",
	},
	{
		ID:          2,
		Title:       "Cultural Couture",
		Subtitle:    "Tradition woven into fashion",
		Description: "Step into timeless African-inspired fashion with premium Ankara dresses, kimonos, and iconic shúkàs.",
		ButtonText:  "View Fashion",
		Image:       "https://i.pinimg.com/736x/8f/51/3f/8f513f3b47dd1fec9e7d6c545ec1f26e.jpg",
	},
	{
		ID:          3,
		Title:       "Heritage in Craft",
		Subtitle:    "Art that transcends time",
		Description: "Celebrate Africa's craftsmanship with wooden sculptures, wall hangings, and beaded leatherwear that bring heritage to life.",
		ButtonText:  "Discover Crafts",
		Image:       "https://sp-ao.shortpixel.ai/client/to_auto,q_glossy,ret_img,w_640,h_640/https://galleria.co.ke/storage/2023/08/Screenshot-2023-08-09-at-3.08.43-PM-640x640.jpeg",
	},
}
