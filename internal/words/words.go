// Package words holds the built-in word lists the secret word is
// drawn from, grouped by category.
package words

// Category describes one selectable word category.
type Category struct {
	ID          string
	Name        string
	Description string
}

// Categories returns the selectable categories in display order.
func Categories() []Category {
	return []Category{
		{ID: "animals", Name: "Animales", Description: "Animales domésticos y salvajes"},
		{ID: "body_parts", Name: "Partes del cuerpo", Description: "Partes del cuerpo humano"},
		{ID: "action_verbs", Name: "Acciones", Description: "Verbos de acción cotidianos"},
		{ID: "clothings", Name: "Ropa", Description: "Prendas de vestir y accesorios"},
		{ID: "family_members", Name: "Miembros de la familia", Description: "Relaciones familiares y parentescos"},
		{ID: "foods", Name: "Comida", Description: "Alimentos y platos típicos"},
		{ID: "fruits", Name: "Frutas", Description: "Frutos comestibles de plantas"},
		{ID: "vegetables", Name: "Verduras", Description: "Plantas comestibles y hortalizas"},
		{ID: "bedroom", Name: "Habitación", Description: "Elementos de un dormitorio"},
		{ID: "kitchen_furniture", Name: "Muebles de la cocina", Description: "Mobiliario y utensilios de cocina"},
		{ID: "jobs", Name: "Trabajos", Description: "Profesiones y ocupaciones laborales"},
		{ID: "vehicles", Name: "Vehículos", Description: "Medios de transporte"},
	}
}

// ValidCategory reports whether a category id has a word list.
func ValidCategory(id string) bool {
	_, ok := sets[id]
	return ok
}

// Pool implements game.WordPool over the built-in sets.
type Pool struct{}

func (Pool) Words(category string) []string {
	return sets[category]
}

var sets = map[string][]string{
	"animals": {
		"Lagarto", "Hormiga", "Murciélago", "Oso", "Castor", "Abeja",
		"Pájaro", "Camello", "Gato", "Pollo", "Serpiente", "Vaca",
		"Coyote", "Cangrejo", "Cocodrilo", "Ciervo", "Perro", "Delfín",
		"Águila", "Elefante", "Zorro", "Rana", "Jirafa", "Caballo",
		"Canguro", "León", "Mono", "Ratón", "Búho", "Pingüino",
		"Conejo", "Tiburón", "Tortuga", "Ballena", "Lobo", "Cebra",
	},
	"body_parts": {
		"Brazo", "Tobillo", "Espalda", "Cerebro", "Pecho", "Barbilla",
		"Oreja", "Codo", "Ojo", "Ceja", "Dedo", "Pie", "Frente",
		"Cabello", "Mano", "Cabeza", "Corazón", "Rodilla", "Pierna",
		"Boca", "Cuello", "Nariz", "Hombro", "Garganta", "Lengua",
		"Diente", "Muñeca",
	},
	"action_verbs": {
		"Construir", "Atrapar", "Aplaudir", "Escalar", "Cocinar",
		"Llorar", "Bailar", "Dibujar", "Conducir", "Comer", "Ayudar",
		"Abrazar", "Saltar", "Reír", "Escuchar", "Jugar", "Empujar",
		"Leer", "Correr", "Cantar", "Dormir", "Nadar", "Hablar",
		"Caminar", "Gritar",
	},
	"clothings": {
		"Blusa", "Botas", "Abrigo", "Vestido", "Chaqueta", "Jeans",
		"Pijama", "Pantalones", "Impermeable", "Sandalia", "Camisa",
		"Zapato", "Falda", "Calcetín", "Suéter", "Corbata", "Camiseta",
		"Chaleco", "Cinturón", "Pulsera", "Gorra", "Gafas", "Guantes",
		"Sombrero", "Collar", "Anillo", "Bufanda", "Paraguas", "Reloj",
	},
	"family_members": {
		"Tía", "Bebé", "Hermano", "Primo", "Papá", "Hija", "Abuelo",
		"Abuela", "Nieta", "Madre", "Sobrino", "Hermana", "Hijo",
		"Tío", "Novia", "Cuñado", "Suegro", "Madrina", "Esposo",
		"Esposa", "Yerno", "Padrastro",
	},
	"foods": {
		"Pan", "Mantequilla", "Pastel", "Queso", "Pollo", "Chocolate",
		"Café", "Galleta", "Postre", "Huevo", "Pescado", "Jamón",
		"Hamburguesa", "Helado", "Leche", "Tortilla", "Arroz",
		"Ensalada", "Sándwich", "Sopa", "Filete", "Té", "Pavo",
		"Yogur", "Ajo", "Mostaza", "Sal", "Vainilla",
	},
	"fruits": {
		"Manzana", "Banana", "Mora", "Arándano", "Cereza", "Coco",
		"Higo", "Uva", "Kiwi", "Mandarina", "Mango", "Naranja",
		"Papaya", "Durazno", "Pera", "Piña", "Ciruela", "Granada",
		"Frambuesa", "Tomate", "Sandía",
	},
	"vegetables": {
		"Aguacate", "Frijoles", "Remolacha", "Brócoli", "Repollo",
		"Zanahoria", "Coliflor", "Apio", "Maíz", "Pepino", "Berenjena",
		"Lechuga", "Champiñones", "Cebolla", "Guisantes", "Papa",
		"Calabaza", "Rábano", "Espinaca", "Camote", "Calabacín",
	},
	"bedroom": {
		"Despertador", "Cama", "Sábana", "Mesa de noche", "Cobija",
		"Persianas", "Alfombra", "Cómoda", "Armario", "Cortinas",
		"Cajón", "Edredón", "Percha", "Lámpara", "Colchón", "Espejo",
		"Almohada", "Pantuflas", "Ventana",
	},
	"kitchen_furniture": {
		"Licuadora", "Botella", "Abrelatas", "Tazón", "Escoba",
		"Cafetera", "Plato", "Lavavajillas", "Tenedor", "Congelador",
		"Sartén", "Vaso", "Rallador", "Cuchillo", "Cucharón",
		"Microondas", "Taza", "Horno", "Jarra", "Olla", "Refrigerador",
		"Basurero", "Salero",
	},
	"jobs": {
		"Abogado", "Actor", "Arquitecto", "Bombero", "Carpintero",
		"Cartero", "Científico", "Cocinero", "Dentista", "Doctor",
		"Electricista", "Enfermera", "Granjero", "Ingeniero",
		"Jardinero", "Maestro", "Mecánico", "Músico", "Panadero",
		"Peluquero", "Piloto", "Pintor", "Plomero", "Policía",
		"Veterinario",
	},
	"vehicles": {
		"Ambulancia", "Autobús", "Avión", "Barco", "Bicicleta",
		"Camión", "Camioneta", "Canoa", "Coche", "Cohete",
		"Helicóptero", "Lancha", "Metro", "Motocicleta", "Patineta",
		"Submarino", "Taxi", "Tractor", "Tren", "Tranvía",
	},
}
