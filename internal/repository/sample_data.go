package repository

import "github.com/dkazarau/histbot/internal/domain/entities"

// Starter dataset on the history of Belarus, used on first run.
var sampleEvents = []entities.Event{
	{Date: "1569", Description: "Люблинская уния. Объединение Великого княжества Литовского и Королевства Польского в Речь Посполитую"},
	{Date: "1791", Description: "Принятие Конституции Речи Посполитой 3 мая"},
	{Date: "1794", Description: "Восстание под руководством Тадеуша Костюшко"},
	{Date: "1795", Description: "Третий раздел Речи Посполитой. Включение белорусских земель в состав Российской империи"},
	{Date: "1812", Description: "Отечественная война 1812 года. Сражения на территории Беларуси"},
	{Date: "1863-1864", Description: "Восстание под руководством К. Калиновского"},
	{Date: "1917", Description: "Февральская и Октябрьская революции"},
	{Date: "1918", Description: "Провозглашение Белорусской Народной Республики (БНР)"},
	{Date: "1919", Description: "Создание Белорусской ССР (БССР)"},
	{Date: "1941-1944", Description: "Великая Отечественная война на территории Беларуси"},
	{Date: "1986", Description: "Авария на Чернобыльской АЭС"},
	{Date: "1991", Description: "Провозглашение независимости Республики Беларусь"},
	{Date: "1994", Description: "Принятие Конституции Республики Беларусь, первые президентские выборы"},
}

var sampleFigures = []entities.Figure{
	{Name: "Франциск Скорина", Achievement: "Белорусский первопечатник, просветитель, переводчик Библии на старобелорусский язык"},
	{Name: "Кастусь Калиновский", Achievement: "Лидер национально-освободительного восстания 1863-1864 годов, публицист"},
	{Name: "Евфросиния Полоцкая", Achievement: "Просветительница, основательница монастырей и школ в Полоцке"},
	{Name: "Петр Мстиславец", Achievement: "Белорусский первопечатник, соратник Ивана Федорова"},
	{Name: "Тадеуш Костюшко", Achievement: "Руководитель восстания 1794 года, национальный герой Беларуси, Польши и США"},
	{Name: "Якуб Колас", Achievement: "Народный поэт Беларуси, один из основателей новой белорусской литературы"},
	{Name: "Янка Купала", Achievement: "Народный поэт Беларуси, классик белорусской литературы, драматург"},
	{Name: "Максим Богданович", Achievement: "Белорусский поэт, прозаик, публицист, литературовед, переводчик"},
}
