package app

import (
	"nutrimix/internal/models"

	"github.com/lib/pq"
)

// SampleCatalog returns the storefront's launch products.
func SampleCatalog() []models.Product {
	return []models.Product{
		{
			ID:            1,
			Name:          "Premium Health Mix",
			Price:         models.Float(199),
			OriginalPrice: models.Float(399),
			Image:         "/original_images/Health_mix_1.webp",
			Category:      "featured",
			Rating:        4.8,
			Reviews:       120,
			Specs:         pq.StringArray{"100% Natural", "No Added Sugar", "Rich in Protein", "Immunity Booster"},
			Description:   "A perfect blend of natural ingredients to boost your daily health and immunity.",
			Ingredients: pq.StringArray{
				"Sprouted Ragi (Finger Millet)", "Bajra (Pearl Millet)", "Jowar (Sorghum)", "Green Gram",
				"Roasted Gram", "Almonds", "Cashews", "Cardamom",
			},
			Uses: pq.StringArray{
				"Mix 2 tablespoons with warm milk or water.",
				"Cook as a porridge for breakfast.",
				"Add to smoothies for extra protein.",
				"Use as a healthy substitute for flour in baking.",
			},
		},
		{
			ID:            2,
			Name:          "Organic Superfood",
			Price:         models.Float(199),
			OriginalPrice: models.Float(399),
			Image:         "/original_images/718yDOwTEML.jpg",
			Category:      "bestselling",
			Rating:        4.9,
			Reviews:       85,
			Specs:         pq.StringArray{"Organic", "Gluten Free", "Non-GMO", "High Fiber"},
			Description:   "Experience the power of nature with our organic superfood mix.",
			Ingredients:   pq.StringArray{"Spirulina", "Chlorella", "Wheatgrass", "Moringa", "Ashwagandha", "Stevia Extract"},
			Uses: pq.StringArray{
				"Blend into your morning smoothie.",
				"Stir into juice or water.",
				"Sprinkle over salads or yogurt.",
				"Mix into energy balls.",
			},
		},
		{
			ID:            3,
			Name:          "Vitality Powder",
			Price:         models.Float(199),
			OriginalPrice: models.Float(399),
			Image:         "/original_images/images (2).jpg",
			Category:      "featured",
			Rating:        4.5,
			Reviews:       50,
			Specs:         pq.StringArray{"Vitamins A-Z", "Energy Boost", "Low Calorie"},
			Description:   "Stay energetic all day long with Vitality Powder.",
			Ingredients:   pq.StringArray{"Beetroot Powder", "Ginseng Root", "Guarana Seed", "Vitamin B Complex", "Electrolytes"},
			Uses: pq.StringArray{
				"Drink as a pre-workout booster.",
				"Take mid-day to fight fatigue.",
				"Mix with iced tea.",
				"Add to post-workout shakes.",
			},
		},
		{
			ID:            4,
			Name:          "Nutri-Active Blend",
			Price:         models.Float(199),
			OriginalPrice: models.Float(399),
			Image:         "/original_images/Health_mix_1.webp",
			Category:      "bestselling",
			Rating:        4.7,
			Reviews:       200,
			Specs:         pq.StringArray{"Probiotics", "Digestive Health", "Vegan"},
			Description:   "Optimal nutrition for active lifestyles.",
			Ingredients:   pq.StringArray{"Pea Protein Isolate", "Flaxseed", "Chia Seeds", "Probiotic Culture Blend", "Digestive Enzymes"},
			Uses: pq.StringArray{
				"Shake with almond milk.",
				"Blend with frozen berries.",
				"Stir into oatmeal.",
				"Make protein pancakes.",
			},
		},
	}
}
