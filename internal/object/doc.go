// Package object turns the generic, string-tagged objects of a scene
// document into a closed set of strongly-typed category views.
//
// # Why a Closed Union With an Unknown Arm
//
// Scene documents contain every (class, subclass) combination their producer
// felt like writing, and all of them are legal. Classification therefore can
// never fail: anything this layer does not model lands in UnknownHandle,
// which still carries the original handle so no information is lost. Known
// category sets grow by adding variants; callers that type-switch with a
// default arm keep working unchanged.
//
// # Two Dispatch Levels
//
// Classify matches (class, subclass) against an ordered table and yields a
// category view (Model, Deformer, Material, Texture, Video, Unknown). Within
// a category the same pattern repeats one level down: VideoHandle.Typed()
// narrows to Clip or an unknown video, DeformerHandle.Typed() to Skin, and
// so on. A category's own dispatcher never needs to know about outer levels.
//
// # Downcasts vs. Classification
//
// The As* constructors are explicit downcasts for callers that already know
// what they are holding. Unlike Classify they do fail, with a
// *ClassMismatchError, when handed a handle of another class.
package object
