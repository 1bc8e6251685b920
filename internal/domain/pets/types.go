package pets

// Type define los tipos de mascota soportados.
// @Enum Dog, Cat, Bird, Rabbit, Hamster, Guinea Pig, Fish, Turtle, Other
type Type string

const (
	TypeDog       Type = "Dog"
	TypeCat       Type = "Cat"
	TypeBird      Type = "Bird"
	TypeRabbit    Type = "Rabbit"
	TypeHamster   Type = "Hamster"
	TypeGuineaPig Type = "Guinea Pig"
	TypeFish      Type = "Fish"
	TypeTurtle    Type = "Turtle"
	TypeOther     Type = "Other"
)

// Gender define el sexo de la mascota.
// @Enum Male, Female, Unknown
type Gender string

const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderUnknown Gender = "Unknown"
)

// Size define el tamaño de la mascota.
// @Enum Small, Medium, Large, Extra Large
type Size string

const (
	SizeSmall      Size = "Small"
	SizeMedium     Size = "Medium"
	SizeLarge      Size = "Large"
	SizeExtraLarge Size = "Extra Large"
)

// AdoptionStatus es el estado de disponibilidad de la mascota.
// Solo lo muta el tracker de disponibilidad (availability.go);
// ningún otro código escribe este campo.
// @Enum Available, Pending, Adopted
type AdoptionStatus string

const (
	StatusAvailable AdoptionStatus = "Available"
	StatusPending   AdoptionStatus = "Pending"
	StatusAdopted   AdoptionStatus = "Adopted"
)

var validTypes = map[Type]struct{}{
	TypeDog: {}, TypeCat: {}, TypeBird: {}, TypeRabbit: {}, TypeHamster: {},
	TypeGuineaPig: {}, TypeFish: {}, TypeTurtle: {}, TypeOther: {},
}

var validGenders = map[Gender]struct{}{
	GenderMale: {}, GenderFemale: {}, GenderUnknown: {},
}

var validSizes = map[Size]struct{}{
	SizeSmall: {}, SizeMedium: {}, SizeLarge: {}, SizeExtraLarge: {},
}

func ValidType(t Type) bool {
	_, ok := validTypes[t]
	return ok
}

func ValidGender(g Gender) bool {
	_, ok := validGenders[g]
	return ok
}

func ValidSize(s Size) bool {
	_, ok := validSizes[s]
	return ok
}
