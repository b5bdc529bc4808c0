package testimonial

import (
	"fmt"
	"sort"
)

// Testimonial representa a avaliação de um cliente exibida no site
type Testimonial struct {
	ID         int
	Name       string
	AvatarURL  string
	AvatarHint string
	Rating     int
	Quote      string
}

func avatar(name string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/150/150", name)
}

var testimonials = []Testimonial{
	{
		ID:         1,
		Name:       "Ana Silva",
		AvatarURL:  avatar("ana"),
		AvatarHint: "woman avatar",
		Rating:     5,
		Quote:      "Nunca comi uma coxinha tão recheada! O tempero me lembrou a comida da minha avó. Recomendo muito!",
	},
	{
		ID:         2,
		Name:       "Carlos Oliveira",
		AvatarURL:  avatar("carlos"),
		AvatarHint: "man avatar",
		Rating:     5,
		Quote:      "Melhor kibe que já comi! Chegou quentinho e muito rápido. Recomendo demais!",
	},
	{
		ID:         3,
		Name:       "Juliana Santos",
		AvatarURL:  avatar("juliana"),
		AvatarHint: "woman avatar",
		Rating:     5,
		Quote:      "O kit festa salvou meu aniversário! Todos os convidados elogiaram os salgados. Qualidade impecável.",
	},
	{
		ID:         4,
		Name:       "Rafael Costa",
		AvatarURL:  avatar("rafael"),
		AvatarHint: "man avatar",
		Rating:     4,
		Quote:      "A bolinha de queijo é uma delícia, muito queijo mesmo! Só a entrega que demorou um pouquinho, mas valeu a pena.",
	},
	{
		ID:         5,
		Name:       "Fernanda Lima",
		AvatarURL:  avatar("fernanda"),
		AvatarHint: "woman avatar",
		Rating:     5,
		Quote:      "Pedi a esfiha de carne e me surpreendi. Massa fofinha e recheio muito bem temperado. Parabéns!",
	},
}

// All retorna uma cópia dos depoimentos cadastrados
func All() []Testimonial {
	return append([]Testimonial(nil), testimonials...)
}

// AverageRating calcula a nota média; lista vazia tem média zero
func AverageRating(list []Testimonial) float64 {
	if len(list) == 0 {
		return 0
	}
	total := 0
	for _, t := range list {
		total += t.Rating
	}
	return float64(total) / float64(len(list))
}

// TopRated retorna até limit depoimentos, das maiores notas para as menores.
// Empates mantêm a ordem original.
func TopRated(list []Testimonial, limit int) []Testimonial {
	sorted := append([]Testimonial(nil), list...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	if limit >= 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}
