// Package factories generates fake listing exports for demos and tests.
package factories

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"

	"github.com/jaswdr/faker"
)

// Header is the column layout of the listing export.
var Header = []string{
	"name", "address", "phone", "hours", "cuisine", "website",
	"summary", "price_range", "rating", "reviews", "description",
}

var cuisines = []string{
	"Italian", "Cafe", "Indian", "American", "Japanese", "Mexican", "Chinese",
	"Thai", "Vietnamese", "Greek", "French", "Mediterranean", "Korean",
	"Ethiopian", "Seafood", "Vegan", "Brazilian", "Peruvian", "Spanish",
}

var neighborhoods = []struct {
	name string
	zip  string
}{
	{"Downtown", "77002"},
	{"Montrose", "77006"},
	{"River Oaks", "77019"},
	{"Galleria", "77057"},
	{"Heights", "77008"},
	{"Midtown", "77004"},
	{"Rice Village", "77005"},
	{"Hillcroft", "77036"},
	{"Westchase", "77063"},
	{"Sharpstown", "77074"},
	{"Gulfton", "77081"},
	{"Alief", "77099"},
}

var hourFormats = []string{
	"%d:00 AM - %d:00 PM",
	"%dAM-%dPM",
	"Mon-Fri %dam-%dpm",
	"%d:30 am to %d:30 pm",
}

// RestaurantRowFactory produces raw listing rows. The same seed always
// yields the same rows.
type RestaurantRowFactory struct {
	fake faker.Faker
}

func NewRestaurantRowFactory(seed int64) *RestaurantRowFactory {
	return &RestaurantRowFactory{fake: faker.NewWithSeed(rand.NewSource(seed))}
}

// CreateRow returns one row in Header order.
func (rf *RestaurantRowFactory) CreateRow() []string {
	return []string{
		rf.fake.Company().Name(),
		rf.address(),
		rf.fake.Phone().Number(),
		rf.hours(),
		rf.cuisine(),
		rf.fake.Internet().URL(),
		rf.fake.Lorem().Sentence(6),
		rf.priceRange(),
		rf.rating(),
		fmt.Sprintf("%d", rf.fake.IntBetween(0, 2500)),
		rf.description(),
	}
}

func (rf *RestaurantRowFactory) address() string {
	n := neighborhoods[rf.fake.IntBetween(0, len(neighborhoods)-1)]
	return fmt.Sprintf("%s %s, %s, Houston, TX %s",
		rf.fake.Address().BuildingNumber(), rf.fake.Address().StreetName(), n.name, n.zip)
}

func (rf *RestaurantRowFactory) hours() string {
	// a few listings have no usable hours
	if rf.fake.IntBetween(1, 10) == 1 {
		return rf.fake.RandomStringElement([]string{"", "Call for hours", "Closed Mondays"})
	}
	format := hourFormats[rf.fake.IntBetween(0, len(hourFormats)-1)]
	return fmt.Sprintf(format, rf.fake.IntBetween(6, 11), rf.fake.IntBetween(5, 11))
}

func (rf *RestaurantRowFactory) cuisine() string {
	primary := cuisines[rf.fake.IntBetween(0, len(cuisines)-1)]
	if rf.fake.IntBetween(1, 3) == 1 {
		return primary + " / " + cuisines[rf.fake.IntBetween(0, len(cuisines)-1)]
	}
	return primary
}

func (rf *RestaurantRowFactory) priceRange() string {
	if rf.fake.IntBetween(1, 12) == 1 {
		return ""
	}
	low := rf.fake.IntBetween(1, 8) * 5
	return fmt.Sprintf("$%d-%d", low, low+rf.fake.IntBetween(1, 4)*5)
}

func (rf *RestaurantRowFactory) rating() string {
	rating := rf.fake.Float64(1, 25, 50) / 10
	if rf.fake.IntBetween(1, 4) == 1 {
		return fmt.Sprintf("%.1f stars", rating)
	}
	return fmt.Sprintf("%.1f", rating)
}

func (rf *RestaurantRowFactory) description() string {
	if rf.fake.IntBetween(1, 5) == 1 {
		return ""
	}
	return rf.fake.Lorem().Sentence(12)
}

// WriteCSV writes the header followed by rows generated rows. onRow, when
// not nil, is called after each row.
func (rf *RestaurantRowFactory) WriteCSV(w io.Writer, rows int, onRow func()) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		if err := cw.Write(rf.CreateRow()); err != nil {
			return err
		}
		if onRow != nil {
			onRow()
		}
	}
	cw.Flush()
	return cw.Error()
}
