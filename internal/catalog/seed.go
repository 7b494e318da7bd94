package catalog

// Seed is the static, read-only catalog loaded at process start.
// Admin edits never mutate it; they live in a separate overlay collection.
var Seed = []Product{
	{
		ID:            1,
		Name:          "Beaded Necklace",
		Description:   "A stunning Maasai-inspired necklace, meticulously handcrafted using vibrant recycled beads and brass accents. Each piece tells a story of tradition and artistry, making it not only a fashion accessory but also a cultural statement. Perfect for adding a bold, colorful touch to any outfit.",
		Brand:         "Maasai Creations",
		Price:         2500,
		OriginalPrice: 3000,
		Image:         "https://c8.alamy.com/comp/ARB0BC/maasai-necklace-detail-hand-beaded-maasi-mara-kenya-ARB0BC.jpg",
		Rating:        4.7,
		ReviewCount:   189,
		Categories:    []string{"African Inspired Jewellery", "Women"},
		Stock:         12,
		IsNew:         true,
		InStock:       true,
		IsOnSale:      true,
		Reviews: []Review{
			{Author: "Amina K.", Rating: 5, Comment: "Absolutely love this necklace! The craftsmanship is amazing and it adds a beautiful pop of color to any outfit."},
		},
	},
	{
		ID:            2,
		Name:          "Brass Earrings",
		Description:   "Exquisite recycled brass earrings featuring intricate African-inspired patterns. Lightweight yet durable, these earrings are perfect for elevating both casual and formal looks. Handmade by skilled Nairobi artisans, each pair showcases cultural heritage with contemporary elegance.",
		Brand:         "Nairobi Artisans",
		Price:         1500,
		OriginalPrice: 1800,
		Image:         "https://i.etsystatic.com/21884093/r/il/42c2d5/7155245927/il_300x300.7155245927_bjsp.jpg",
		Rating:        4.5,
		ReviewCount:   96,
		Categories:    []string{"African Inspired Jewellery", "Women"},
		Stock:         25,
		InStock:       true,
		IsOnSale:      true,
		Reviews: []Review{
			{Author: "Sophia M.", Rating: 4, Comment: "Lovely earrings, very lightweight and elegant. They go well with both casual and formal outfits."},
		},
	},
	{
		ID:            3,
		Name:          "Ankara Kimono",
		Description:   "This vibrant Ankara kimono blends traditional African prints with modern fashion sensibilities. Hand-sewn from high-quality cotton fabric, it offers comfort and style for everyday wear or special occasions. A statement piece that celebrates African artistry and color.",
		Brand:         "Ankara Styles",
		Price:         4200,
		OriginalPrice: 4800,
		Image:         "https://i.pinimg.com/736x/8f/51/3f/8f513f3b47dd1fec9e7d6c545ec1f26e.jpg",
		Rating:        4.6,
		ReviewCount:   142,
		Categories:    []string{"Clothing", "Women"},
		Stock:         8,
		IsNew:         true,
		InStock:       true,
		IsOnSale:      true,
		Reviews: []Review{
			{Author: "Lydia T.", Rating: 5, Comment: "Beautiful kimono, very comfortable and vibrant. I get compliments every time I wear it!"},
		},
	},
	{
		ID:            4,
		Name:          "Ankara Dress",
		Description:   "An iconic African dress crafted from premium Ankara fabric. This elegant piece is designed to accentuate your silhouette while showcasing vibrant, culturally rich patterns. Perfect for weddings, cultural celebrations, or high-fashion events.",
		Brand:         "African Couture",
		Price:         5500,
		OriginalPrice: 6000,
		Image:         "https://d17a17kld06uk8.cloudfront.net/products/7NCDQBM/9QWSMSYU-large.jpg",
		Rating:        4.8,
		ReviewCount:   210,
		Categories:    []string{"Clothing", "Women"},
		Stock:         15,
		InStock:       true,
		IsOnSale:      true,
		Reviews: []Review{
			{Author: "Grace N.", Rating: 5, Comment: "Absolutely stunning dress! The fabric quality is premium and fits perfectly for special occasions."},
		},
	},
	{
		ID:            5,
		Name:          "Leather Sandals",
		Description:   "Handcrafted leather sandals inspired by Maasai traditions. Made from high-quality leather, they are durable, comfortable, and versatile. The sandals feature intricate beadwork, blending functional footwear with artisanal African artistry.",
		Brand:         "Safari Leatherworks",
		Price:         2800,
		OriginalPrice: 3200,
		Image:         "https://www.africanecurio.net/wp-content/uploads/2022/01/il_794xN.3133160925_5m54.jpg",
		Rating:        4.4,
		ReviewCount:   178,
		Categories:    []string{"Authentic Leather Wear", "Men", "Women"},
		Stock:         30,
		IsNew:         true,
		InStock:       true,
		IsOnSale:      true,
		Reviews: []Review{
			{Author: "Daniel K.", Rating: 4, Comment: "Very comfortable and stylish sandals. The beadwork is a nice touch. Highly recommend!"},
		},
	},
	{
		ID:            6,
		Name:          "Beaded Leather Belt",
		Description:   "A premium handcrafted leather belt adorned with colorful Maasai beadwork. Each belt represents a fusion of traditional craftsmanship and modern fashion, making it a unique accessory for both casual and formal outfits.",
		Brand:         "Heritage Crafts",
		Price:         3500,
		OriginalPrice: 3900,
		Image:         "https://maasaipeople.com/wp-content/uploads/2024/03/modeled_beaded_belt_front-resized.jpg",
		Rating:        4.3,
		ReviewCount:   92,
		Categories:    []string{"Authentic Leather Wear", "Men"},
		Stock:         18,
		InStock:       true,
		IsOnSale:      true,
		Reviews: []Review{
			{Author: "Mark A.", Rating: 4, Comment: "Beautiful belt, looks great with casual and formal attire. Beadwork is very detailed."},
		},
	},
	{
		ID:            7,
		Name:          "Wooden Sculpture",
		Description:   "A meticulously hand-carved African warrior sculpture crafted from premium mahogany wood. This decorative piece embodies strength, tradition, and artistry, making it a perfect centerpiece for home or office décor with cultural depth.",
		Brand:         "Kisii Woodcarvers",
		Price:         7000,
		OriginalPrice: 7500,
		Image:         "https://sp-ao.shortpixel.ai/client/to_auto,q_glossy,ret_img,w_640,h_640/https://galleria.co.ke/storage/2023/08/Screenshot-2023-08-09-at-3.08.43-PM-640x640.jpeg",
		Rating:        4.9,
		ReviewCount:   56,
		Categories:    []string{"African Inspired Crafts"},
		Stock:         6,
		IsNew:         true,
		InStock:       true,
		IsOnSale:      true,
		Reviews: []Review{
			{Author: "Alice W.", Rating: 5, Comment: "Incredible craftsmanship! This sculpture adds character to my living room."},
		},
	},
	{
		ID:            8,
		Name:          "Wall Hanging",
		Description:   "A decorative wall hanging featuring intricate African beadwork. Each piece is handcrafted to bring warmth, color, and cultural charm into your home. Ideal for adding a sophisticated ethnic touch to living spaces, offices, or galleries.",
		Brand:         "Tribal Decor",
		Price:         4800,
		OriginalPrice: 5200,
		Image:         "https://res.cloudinary.com/andariya-new-new/image/upload/v1632394310/KMM_5_04f9f1a43d.png",
		Rating:        4.5,
		ReviewCount:   73,
		Categories:    []string{"African Inspired Crafts"},
		Stock:         20,
		InStock:       true,
		IsOnSale:      true,
		Reviews: []Review{
			{Author: "Betty L.", Rating: 5, Comment: "Beautiful wall hanging, brightens up my living space and looks authentic."},
		},
	},
	{
		ID:            9,
		Name:          "Maasai Shúkà",
		Description:   "Traditional Maasai shúkà cloth made from premium fabric. Rich in symbolism and versatile in use, it can be worn as a wrap, shawl, or draped garment. Celebrates Maasai heritage while offering contemporary style for cultural enthusiasts.",
		Brand:         "Maasai Heritage",
		Price:         3200,
		OriginalPrice: 3500,
		Image:         "https://media.gadventures.com/media-server/cache/56/73/56731d067d574988f6715b1ceae9899b.jpg",
		Rating:        4.6,
		ReviewCount:   129,
		Categories:    []string{"Cultural Wear", "Men", "Women"},
		Stock:         40,
		IsNew:         true,
		InStock:       true,
		IsOnSale:      true,
		Reviews: []Review{
			{Author: "John M.", Rating: 5, Comment: "Soft and vibrant fabric, very authentic Maasai design. Love it!"},
		},
	},
	{
		ID:            10,
		Name:          "Nigerian Agbada",
		Description:   "A classic Nigerian agbada ensemble, exquisitely tailored for cultural ceremonies and formal events. Made with luxurious fabric and intricate embroidery, this outfit reflects heritage, elegance, and timeless African fashion for men and young boys.",
		Brand:         "Naija Styles",
		Price:         15000,
		OriginalPrice: 16000,
		Image:         "https://i.pinimg.com/736x/b9/72/5e/b9725e24e593601205d369032afcf345.jpg",
		Rating:        4.7,
		ReviewCount:   64,
		Categories:    []string{"Cultural Wear", "Men", "Kids"},
		Stock:         10,
		InStock:       true,
		IsOnSale:      true,
		Reviews: []Review{
			{Author: "Chinedu O.", Rating: 5, Comment: "Perfect agbada for special occasions, fits well and the embroidery is exquisite."},
		},
	},
}
