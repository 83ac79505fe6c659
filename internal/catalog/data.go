package catalog

import "fashionmela/internal/domain"

// Demo catalog for the storefront. IDs listed in specialOfferIDs carry a
// discounted Price below their OriginalPrice.
var products = []domain.Product{
	{
		ID:          1,
		Name:        "Classic White Tee",
		Price:       500,
		Category:    "T-Shirts",
		Gender:      "Men",
		Rating:      4.4,
		ReviewCount: 182,
		Image:       "/images/products/classic-white-tee.webp",
		Description: "Soft combed-cotton crew neck in plain white.",
	},
	{
		ID:            2,
		Name:          "Embroidered Lawn Kurta",
		Price:         1000,
		OriginalPrice: 1500,
		Category:      "Kurtas",
		Gender:        "Women",
		Rating:        4.7,
		ReviewCount:   341,
		Image:         "/images/products/lawn-kurta.webp",
		Description:   "Printed lawn kurta with neckline embroidery.",
	},
	{
		ID:          3,
		Name:        "Slim Fit Denim Jeans",
		Price:       2450,
		Category:    "Jeans",
		Gender:      "Men",
		Rating:      4.2,
		ReviewCount: 96,
		Image:       "/images/products/slim-denim.webp",
		Description: "Stretch denim with a tapered leg.",
	},
	{
		ID:            4,
		Name:          "Chiffon Dupatta",
		Price:         750,
		OriginalPrice: 1000,
		Category:      "Accessories",
		Gender:        "Women",
		Rating:        4.5,
		ReviewCount:   57,
		Image:         "/images/products/chiffon-dupatta.webp",
		Description:   "Lightweight dyed chiffon dupatta.",
	},
	{
		ID:          5,
		Name:        "Hooded Zipper Jacket",
		Price:       3200,
		Category:    "Jackets",
		Gender:      "Men",
		Rating:      4.6,
		ReviewCount: 203,
		Image:       "/images/products/hooded-zipper.webp",
		Description: "Fleece-lined hoodie with a full-length zip.",
	},
	{
		ID:            6,
		Name:          "Printed Summer Frock",
		Price:         1800,
		OriginalPrice: 2400,
		Category:      "Dresses",
		Gender:        "Women",
		Rating:        4.3,
		ReviewCount:   128,
		Image:         "/images/products/summer-frock.webp",
		Description:   "A-line frock in breathable printed cambric.",
	},
	{
		ID:          7,
		Name:        "Formal Oxford Shirt",
		Price:       1950,
		Category:    "Shirts",
		Gender:      "Men",
		Rating:      4.1,
		ReviewCount: 74,
		Image:       "/images/products/oxford-shirt.webp",
		Description: "Wrinkle-resistant oxford weave, button-down collar.",
	},
	{
		ID:          8,
		Name:        "Khaddar Shawl",
		Price:       2800,
		Category:    "Accessories",
		Gender:      "Women",
		Rating:      4.8,
		ReviewCount: 412,
		Image:       "/images/products/khaddar-shawl.webp",
		Description: "Handwoven winter khaddar shawl.",
	},
	{
		ID:            9,
		Name:          "Sports Trainer Shoes",
		Price:         3600,
		OriginalPrice: 4500,
		Category:      "Footwear",
		Gender:        "Men",
		Rating:        4.4,
		ReviewCount:   268,
		Image:         "/images/products/trainer-shoes.webp",
		Description:   "Cushioned mesh trainers for daily wear.",
	},
	{
		ID:          10,
		Name:        "Kids Graphic Tee",
		Price:       650,
		Category:    "T-Shirts",
		Gender:      "Kids",
		Rating:      4.0,
		ReviewCount: 39,
		Image:       "/images/products/kids-graphic-tee.webp",
		Description: "Fun printed tee in easy-wash cotton.",
	},
	{
		ID:            11,
		Name:          "Velvet Party Clutch",
		Price:         1200,
		OriginalPrice: 1600,
		Category:      "Accessories",
		Gender:        "Women",
		Rating:        4.2,
		ReviewCount:   88,
		Image:         "/images/products/velvet-clutch.webp",
		Description:   "Velvet clutch with a chain strap.",
	},
	{
		ID:          12,
		Name:        "Cotton Shalwar Kameez",
		Price:       2200,
		Category:    "Kurtas",
		Gender:      "Men",
		Rating:      4.5,
		ReviewCount: 154,
		Image:       "/images/products/shalwar-kameez.webp",
		Description: "Stitched two-piece in premium cotton.",
	},
}

var specialOfferIDs = []int{2, 4, 6, 9, 11}
